package focus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

// Options configures a Toggler.
type Options struct {
	Target     Target
	AppPath    string // executable used for launch
	URL        string // passed as --app=<url> on launch
	SoleWindow SoleWindowPolicy
}

// Result is the outcome of one toggle.
type Result struct {
	OK          bool         `yaml:"ok"                json:"ok"`
	Action      *Action      `yaml:"action,omitempty"  json:"action,omitempty"`
	Observation *Observation `yaml:"observed,omitempty" json:"observed,omitempty"`
	Error       string       `yaml:"error,omitempty"   json:"error,omitempty"`
	ElapsedMs   int64        `yaml:"elapsed_ms"        json:"elapsed_ms"`
}

// Toggler observes, decides and executes.
type Toggler struct {
	provider *platform.Provider
	locator  *Locator
	opts     Options
	logger   *slog.Logger
}

// NewToggler returns a Toggler using provider's backends.
func NewToggler(provider *platform.Provider, opts Options, logger *slog.Logger) *Toggler {
	return &Toggler{
		provider: provider,
		locator:  NewLocator(provider.Lister, provider.Inspector, logger),
		opts:     opts,
		logger:   logger,
	}
}

// Plan observes the desktop and decides, without side effects.
func (t *Toggler) Plan(ctx context.Context) (Action, Observation, error) {
	obs, err := t.locator.Observe(ctx, t.opts.Target)
	if err != nil {
		return Action{}, obs, err
	}
	return Decide(obs, t.opts.SoleWindow), obs, nil
}

// Toggle runs one toggle. Failures are logged and reported in the Result,
// never returned.
func (t *Toggler) Toggle(ctx context.Context) Result {
	start := time.Now()
	res := Result{}

	action, obs, err := t.Plan(ctx)
	res.Observation = &obs
	if err != nil {
		t.logger.Warn("observe failed", "app", t.opts.Target.App, "error", err)
		res.Error = err.Error()
		res.ElapsedMs = time.Since(start).Milliseconds()
		return res
	}
	res.Action = &action

	t.logger.Info("toggle", "state", action.State, "action", action.Kind, "windows", action.WindowCount)
	if err := t.Execute(ctx, action); err != nil {
		t.logger.Warn("action failed", "action", action.Kind, "error", err)
		res.Error = err.Error()
		res.ElapsedMs = time.Since(start).Milliseconds()
		return res
	}
	res.OK = true
	res.ElapsedMs = time.Since(start).Milliseconds()
	return res
}

// Execute issues the OS command for a.
func (t *Toggler) Execute(ctx context.Context, a Action) error {
	target := t.opts.Target
	wm := t.provider.WindowManager
	if a.Kind != ActionLaunch && wm == nil {
		return fmt.Errorf("window management not available on this platform")
	}

	switch a.Kind {
	case ActionLaunch:
		if t.provider.Launcher == nil {
			return fmt.Errorf("launching not available on this platform")
		}
		return t.provider.Launcher.Launch(ctx, platform.LaunchOptions{Path: t.opts.AppPath, URL: t.opts.URL})
	case ActionRaise:
		opts := platform.WindowOptions{App: target.App, Markers: target.Markers}
		if a.Target != nil {
			opts.ID = a.Target.ID
		}
		return wm.RaiseWindow(ctx, opts)
	case ActionCycle:
		return wm.RaiseIndex(ctx, platform.WindowOptions{App: target.App, Markers: target.Markers, Index: a.Index})
	case ActionHide:
		return wm.HideApp(ctx, target.App)
	case ActionPushBack:
		return wm.PushToBack(ctx, platform.WindowOptions{App: target.App, Markers: target.Markers})
	default:
		return fmt.Errorf("unknown action %q", a.Kind)
	}
}
