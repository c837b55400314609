// Package focus decides and performs one focus toggle of a target window.
package focus

import (
	"fmt"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
)

// State is the observed situation of the target window. It is derived
// from a fresh Observation on every run and never stored.
type State int

const (
	StateNotRunning State = iota
	StateNoTargetWindow
	StateTargetNotFrontmost
	StateTargetFrontmostSole
	StateTargetFrontmostWithSiblings
)

var stateNames = map[State]string{
	StateNotRunning:                  "not-running",
	StateNoTargetWindow:              "no-target-window",
	StateTargetNotFrontmost:          "target-not-frontmost",
	StateTargetFrontmostSole:         "target-frontmost-sole",
	StateTargetFrontmostWithSiblings: "target-frontmost-with-siblings",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Observation is everything the decider needs to know about the desktop.
type Observation struct {
	App             string        `yaml:"app"                    json:"app"`
	AppRunning      bool          `yaml:"app_running"            json:"app_running"`
	AppFrontmost    bool          `yaml:"app_frontmost"          json:"app_frontmost"`
	Target          *model.Window `yaml:"target,omitempty"       json:"target,omitempty"`
	FrontWindow     *model.Window `yaml:"front_window,omitempty" json:"front_window,omitempty"`
	TargetFrontmost bool          `yaml:"target_frontmost"       json:"target_frontmost"`
	WindowCount     int           `yaml:"window_count"           json:"window_count"`
}

// Classify maps an observation to its State.
func Classify(obs Observation) State {
	switch {
	case !obs.AppRunning:
		return StateNotRunning
	case obs.Target == nil:
		return StateNoTargetWindow
	case !obs.AppFrontmost || !obs.TargetFrontmost:
		return StateTargetNotFrontmost
	case obs.WindowCount > 1:
		return StateTargetFrontmostWithSiblings
	default:
		return StateTargetFrontmostSole
	}
}
