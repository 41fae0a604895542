package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"invaders/game"
)

//go:embed assets/*.svg
var embeddedAssets embed.FS

type options struct {
	width, height int
	mobile        bool
	assetsDir     string
	debug         bool
	profileDir    string
	maxWaves      int
	dumpDir       string
}

func parseFlags(args []string) (options, error) {
	defaults := game.DefaultConfig()
	opts := options{
		width:  int(defaults.CanvasWidth),
		height: int(defaults.CanvasHeight),
	}

	flags := flag.NewFlagSet("invaders", flag.ContinueOnError)
	flags.BoolVar(&opts.mobile, "mobile", false, "Touch controls with auto-fire")
	flags.StringVar(&opts.assetsDir, "assets", "", "Load sprites from this directory instead of the embedded set")
	flags.BoolVar(&opts.debug, "debug", false, "Write logs to logs/invaders.log and show FPS")
	flags.StringVar(&opts.profileDir, "profile", "", "Capture CPU profiles and traces into this directory on frame drops")
	flags.IntVar(&opts.maxWaves, "waves", 0, "End the game in victory after this many waves (0 = endless)")
	flags.StringVar(&opts.dumpDir, "dump-sprites", "", "Write every loaded sprite as PNG into this directory")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if opts.maxWaves < 0 {
		return opts, errors.New("-waves must not be negative")
	}
	return opts, nil
}

func assetFS(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(embeddedAssets, "assets")
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	fsys, err := assetFS(opts.assetsDir)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	manager := game.NewAssetManager(fsys, game.DefaultManifest())
	manager.DebugDir = opts.dumpDir

	app := NewApp(context.Background(), opts, manager)
	defer app.Close()

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
