package focus

import (
	"context"
	"strconv"
	"strings"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

// fakeDesktop is an in-memory window server. windows are front to back.
type fakeDesktop struct {
	windows  []model.Window
	running  map[string]bool
	frontApp string

	listErr    error
	inspectErr error
	actionErr  error

	calls     []string
	cycleOpts platform.WindowOptions
}

func (d *fakeDesktop) ListWindows(_ context.Context, opts platform.ListOptions) ([]model.Window, error) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	out := []model.Window{}
	for _, w := range d.windows {
		if opts.App != "" && !strings.EqualFold(w.App, opts.App) {
			continue
		}
		if opts.OnScreenOnly && !w.OnScreen {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (d *fakeDesktop) IsRunning(_ context.Context, app string) (bool, error) {
	if d.inspectErr != nil {
		return false, d.inspectErr
	}
	return d.running[app], nil
}

func (d *fakeDesktop) FrontmostApp(context.Context) (string, error) {
	if d.inspectErr != nil {
		return "", d.inspectErr
	}
	return d.frontApp, nil
}

func (d *fakeDesktop) RaiseWindow(_ context.Context, opts platform.WindowOptions) error {
	d.calls = append(d.calls, "raise")
	return d.actionErr
}

func (d *fakeDesktop) RaiseIndex(_ context.Context, opts platform.WindowOptions) error {
	d.calls = append(d.calls, "raise-index:"+strconv.Itoa(opts.Index))
	d.cycleOpts = opts
	return d.actionErr
}

func (d *fakeDesktop) PushToBack(_ context.Context, opts platform.WindowOptions) error {
	d.calls = append(d.calls, "push-back")
	return d.actionErr
}

func (d *fakeDesktop) HideApp(_ context.Context, app string) error {
	d.calls = append(d.calls, "hide:"+app)
	return d.actionErr
}

func (d *fakeDesktop) Launch(_ context.Context, opts platform.LaunchOptions) error {
	d.calls = append(d.calls, "launch:"+strings.Join(opts.Args(), " "))
	return d.actionErr
}

func (d *fakeDesktop) provider() *platform.Provider {
	return &platform.Provider{
		Name:          "fake",
		Lister:        d,
		Inspector:     d,
		WindowManager: d,
		Launcher:      d,
	}
}

var cometTarget = Target{App: "Comet", Markers: []string{"chatgpt", "chat.openai.com"}}
