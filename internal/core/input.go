package core

// Action represents a semantic input intent, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionActivate          // Space, Up, W, Enter, left click - start a game or flap
	ActionPause             // P - suspend or resume a running game
	ActionQuit              // Q, Esc, Ctrl+C - leave the program
	ActionScreenshot        // Ctrl+S - dump the screen to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Event is a single input or time event delivered to a game.
// Games process events one at a time through a single entry point.
type Event interface {
	isEvent()
}

// ViewportReady reports the current playable area.
type ViewportReady struct {
	Width, Height float64
}

// TimeAdvance moves the simulation forward by DT seconds.
type TimeAdvance struct {
	DT float64
}

// ActivateInput starts a game or applies an upward impulse.
type ActivateInput struct{}

// PauseToggleInput suspends or resumes a running game.
type PauseToggleInput struct{}

// SpawnSample carries an externally sampled obstacle height.
type SpawnSample struct {
	Height float64
}

// NoOp is an unrecognized input. Games ignore it.
type NoOp struct{}

func (ViewportReady) isEvent()    {}
func (TimeAdvance) isEvent()      {}
func (ActivateInput) isEvent()    {}
func (PauseToggleInput) isEvent() {}
func (SpawnSample) isEvent()      {}
func (NoOp) isEvent()             {}

// EventFor maps an input action to the game event it produces.
// Actions handled by the platform itself (quit, screenshot) map to NoOp.
func EventFor(a Action) Event {
	switch a {
	case ActionActivate:
		return ActivateInput{}
	case ActionPause:
		return PauseToggleInput{}
	default:
		return NoOp{}
	}
}
