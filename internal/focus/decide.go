package focus

import (
	"fmt"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
)

// ActionKind names the single OS command a toggle issues.
type ActionKind string

const (
	ActionLaunch   ActionKind = "launch"
	ActionRaise    ActionKind = "raise"
	ActionCycle    ActionKind = "cycle"
	ActionHide     ActionKind = "hide"
	ActionPushBack ActionKind = "push-back"
)

// SoleWindowPolicy selects what happens when the target is frontmost and
// is the application's only window.
type SoleWindowPolicy string

const (
	SoleWindowHide     SoleWindowPolicy = "hide"
	SoleWindowPushBack SoleWindowPolicy = "push-back"
)

// ParseSoleWindowPolicy validates a policy name. Empty means hide.
func ParseSoleWindowPolicy(s string) (SoleWindowPolicy, error) {
	switch SoleWindowPolicy(s) {
	case "", SoleWindowHide:
		return SoleWindowHide, nil
	case SoleWindowPushBack:
		return SoleWindowPushBack, nil
	default:
		return "", fmt.Errorf("unknown sole-window policy %q (use hide or push-back)", s)
	}
}

// Action is the decided command.
type Action struct {
	Kind        ActionKind    `yaml:"kind"             json:"kind"`
	State       State         `yaml:"state"            json:"state"`
	Target      *model.Window `yaml:"target,omitempty" json:"target,omitempty"`
	Index       int           `yaml:"index,omitempty"  json:"index,omitempty"` // cycle destination
	WindowCount int           `yaml:"window_count"     json:"window_count"`
}

// NextIndex returns the 1-based window index after i among n windows,
// wrapping to 1. ok is false when there is no other window to go to.
func NextIndex(i, n int) (next int, ok bool) {
	if n < 2 {
		return 0, false
	}
	if i < 1 {
		i = 1
	}
	next = i%n + 1
	if next == i {
		return 0, false
	}
	return next, true
}

// Decide picks the action for obs. It is a pure function.
func Decide(obs Observation, sole SoleWindowPolicy) Action {
	state := Classify(obs)
	a := Action{State: state, Target: obs.Target, WindowCount: obs.WindowCount}

	switch state {
	case StateNotRunning, StateNoTargetWindow:
		a.Kind = ActionLaunch
	case StateTargetNotFrontmost:
		a.Kind = ActionRaise
	case StateTargetFrontmostWithSiblings:
		if next, ok := NextIndex(obs.Target.Index, obs.WindowCount); ok {
			a.Kind = ActionCycle
			a.Index = next
			return a
		}
		a.Kind = soleAction(sole)
	default:
		a.Kind = soleAction(sole)
	}
	return a
}

func soleAction(p SoleWindowPolicy) ActionKind {
	if p == SoleWindowPushBack {
		return ActionPushBack
	}
	return ActionHide
}
