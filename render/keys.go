package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pickleball/game"
)

type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionUp
	ActionDown
	ActionContinue
	ActionQuit
)

// ActionForKey maps a key press to a game action. Arrows and W/S steer,
// SPACE continues, ESC, Ctrl-C and q quit.
func ActionForKey(ev *tcell.EventKey) KeyAction {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionUp
		case 's', 'S':
			return ActionDown
		case ' ':
			return ActionContinue
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// KeyState turns key presses into a held-key snapshot. Terminals report no
// key releases, so a direction stays held for the hold window after its last
// press or auto-repeat.
type KeyState struct {
	mu        sync.Mutex
	hold      time.Duration
	upUntil   time.Time
	downUntil time.Time
}

func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{hold: hold}
}

// Press records a steering action. Pressing one direction releases the other.
func (k *KeyState) Press(action KeyAction, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch action {
	case ActionUp:
		k.upUntil = now.Add(k.hold)
		k.downUntil = time.Time{}
	case ActionDown:
		k.downUntil = now.Add(k.hold)
		k.upUntil = time.Time{}
	}
}

func (k *KeyState) Input(now time.Time) game.Input {
	k.mu.Lock()
	defer k.mu.Unlock()
	return game.Input{
		Up:   now.Before(k.upUntil),
		Down: now.Before(k.downUntil),
	}
}
