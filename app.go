package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders/game"
)

// App adapts the engine to ebiten. It shows a loading bar until the assets are in,
// then forwards Update and Draw to the engine.
type App struct {
	opts   options
	screen *game.Screen
	hud    *HUD

	manager *game.AssetManager
	loaded  chan *game.Assets
	engine  *game.Engine

	profiler  *game.Profiler
	lastFrame time.Time
}

// NewApp starts loading assets in the background and returns immediately
func NewApp(ctx context.Context, opts options, manager *game.AssetManager) *App {
	a := &App{
		opts:    opts,
		screen:  game.NewScreen(opts.width, opts.height),
		hud:     NewHUD(opts.width, opts.height),
		manager: manager,
		loaded:  make(chan *game.Assets, 1),
	}
	if opts.profileDir != "" {
		a.profiler = game.NewProfiler(opts.profileDir)
	}

	go func() {
		a.loaded <- manager.LoadAll(ctx)
	}()
	return a
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if a.engine == nil {
		select {
		case assets := <-a.loaded:
			engine, err := a.newEngine(assets)
			if err != nil {
				return err
			}
			a.engine = engine
			a.lastFrame = time.Now()
		default:
			return nil
		}
	}

	// F1 toggles the hitbox overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug := a.engine.Debug()
		debug.ShowHitboxes = !debug.ShowHitboxes
	}

	if a.engine.State.IsTerminal() && a.restartPressed() {
		log.Printf("Restarting after %s with score %d", a.engine.State, a.engine.Stats.Score)
		a.engine.Reset()
	}
	a.engine.Update()

	if a.profiler != nil {
		now := time.Now()
		a.profiler.ObserveFrame(now.Sub(a.lastFrame))
		a.lastFrame = now
	}
	return nil
}

func (a *App) restartPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	return a.opts.mobile && len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (a *App) newEngine(assets *game.Assets) (*game.Engine, error) {
	config := game.DefaultConfig()
	config.MaxWaves = a.opts.maxWaves

	events := game.Events{
		LevelUp: func(wave int) {
			log.Printf("Wave %d", wave)
		},
		StateChanged: func(from, to game.GameState) {
			log.Printf("State %s -> %s", from, to)
		},
		PlayerHit: func(livesLeft int) {
			log.Printf("Player hit, %d lives left", livesLeft)
		},
	}
	return game.NewEngine(a.screen, a.opts.mobile, assets,
		game.WithConfig(config),
		game.WithEvents(events),
	)
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	if a.engine == nil {
		a.hud.DrawLoading(screen, a.manager.Progress())
		return
	}

	a.screen.Attach(screen)
	a.engine.Render()
	a.screen.Detach()

	var fps float64
	if a.opts.debug {
		fps = ebiten.ActualFPS()
	}
	a.hud.Draw(screen, a.engine, fps)
}

// Layout implements ebiten.Game. The logical screen never changes size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.opts.width, a.opts.height
}

// Close releases the engine
func (a *App) Close() {
	if a.engine != nil {
		a.engine.Cleanup()
	}
}
