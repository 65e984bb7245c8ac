package flow

// State is a node of the interactive session state machine.
type State int

const (
	MainMenu State = iota
	Registering
	Authenticating
	AreaBrowser
	SessionBrowser
	Confirming
	Terminated
)

var stateNames = [...]string{
	MainMenu:       "main-menu",
	Registering:    "registering",
	Authenticating: "authenticating",
	AreaBrowser:    "area-browser",
	SessionBrowser: "session-browser",
	Confirming:     "confirming",
	Terminated:     "terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
