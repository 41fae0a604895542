package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is one tick's worth of player intent
type Controls struct {
	Left  bool
	Right bool
	Fire  bool

	// Pause is true on the tick the pause key went down
	Pause bool

	// Touching is true while a finger is down; TouchX is its canvas x
	Touching bool
	TouchX   float64
}

// InputSource provides controls for the player
type InputSource interface {
	// Poll returns the controls for the current tick
	Poll() Controls

	// Close detaches the source; later polls return zero controls
	Close()
}

// KeyboardInput provides input from the keyboard (desktop)
type KeyboardInput struct {
	closed bool
}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll reads arrow keys / A-D for movement, Space for fire and P / Escape for pause
func (k *KeyboardInput) Poll() Controls {
	if k.closed {
		return Controls{}
	}
	return Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Close detaches the keyboard
func (k *KeyboardInput) Close() {
	k.closed = true
}

// TouchInput provides input from a touch screen (mobile). The first finger down steers
// the ship; firing is left to the engine's auto-fire timer.
type TouchInput struct {
	active   ebiten.TouchID
	tracking bool
	lastX    float64
	ids      []ebiten.TouchID
	closed   bool

	// Keyboard still delivers the pause key on devices that have one
	keys *KeyboardInput
}

// NewTouchInput creates a new touch input source
func NewTouchInput() *TouchInput {
	return &TouchInput{
		ids:  make([]ebiten.TouchID, 0, 4),
		keys: NewKeyboardInput(),
	}
}

// Poll tracks touch start, move and end of the steering finger
func (t *TouchInput) Poll() Controls {
	if t.closed {
		return Controls{}
	}

	// touchend
	if t.tracking && inpututil.IsTouchJustReleased(t.active) {
		t.tracking = false
	}

	// touchstart
	if !t.tracking {
		t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
		if len(t.ids) > 0 {
			t.active = t.ids[0]
			t.tracking = true
		}
	}

	// touchmove
	if t.tracking {
		x, _ := ebiten.TouchPosition(t.active)
		t.lastX = float64(x)
	}

	return Controls{
		Touching: t.tracking,
		TouchX:   t.lastX,
		Pause:    t.keys.Poll().Pause,
	}
}

// Close detaches the touch screen
func (t *TouchInput) Close() {
	t.closed = true
	t.tracking = false
	t.keys.Close()
}
