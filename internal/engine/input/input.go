// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType distinguishes the events the demo reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventAction
)

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionWarpUp
	ActionWarpDown
	ActionToggleWarp
	ActionToggleGrid
	ActionScreenshot
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionQuit:       "quit",
	ActionWarpUp:     "warp-up",
	ActionWarpDown:   "warp-down",
	ActionToggleWarp: "toggle-warp",
	ActionToggleGrid: "toggle-grid",
	ActionScreenshot: "screenshot",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Action Action
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// ActionForKey maps a key to its command. Unbound keys map to ActionNone.
func ActionForKey(key sdl.Keycode) Action {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q, sdl.K_x:
		return ActionQuit
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		return ActionWarpUp
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return ActionWarpDown
	case sdl.K_m:
		return ActionToggleWarp
	case sdl.K_g:
		return ActionToggleGrid
	case sdl.K_p:
		return ActionScreenshot
	default:
		return ActionNone
	}
}

// Update polls SDL events and converts them to demo events.
// Returns true if the demo should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			action := ActionForKey(e.Keysym.Sym)
			if action == ActionNone {
				continue
			}
			i.events = append(i.events, Event{Type: EventAction, Action: action})
			if action == ActionQuit {
				return true
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Triggered checks if a command was issued this frame.
func (i *Input) Triggered(action Action) bool {
	for _, e := range i.events {
		if e.Type == EventAction && e.Action == action {
			return true
		}
	}
	return false
}
