package applescript

import (
	"context"
	"fmt"
	"strings"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

// Bridge implements the platform inspector, window manager and a
// System Events based window lister on top of a Runner.
type Bridge struct {
	runner Runner
}

// NewBridge returns a Bridge that executes scripts with r.
func NewBridge(r Runner) *Bridge {
	return &Bridge{runner: r}
}

type appData struct {
	App     string
	Markers []string
	Index   int
}

func (b *Bridge) run(ctx context.Context, what string, script string) (string, error) {
	out, err := b.runner.Run(ctx, script)
	if err != nil {
		return "", fmt.Errorf("%s: %w", what, err)
	}
	return out, nil
}

func (b *Bridge) IsRunning(ctx context.Context, app string) (bool, error) {
	script, err := render(isRunningTmpl, appData{App: app})
	if err != nil {
		return false, err
	}
	out, err := b.run(ctx, "check running", script)
	if err != nil {
		return false, err
	}
	return out == "true", nil
}

func (b *Bridge) FrontmostApp(ctx context.Context) (string, error) {
	return b.run(ctx, "frontmost app", frontmostScript)
}

func (b *Bridge) RaiseWindow(ctx context.Context, opts platform.WindowOptions) error {
	if len(opts.Markers) == 0 {
		return fmt.Errorf("raise window: no title markers")
	}
	script, err := render(raiseTmpl, appData{App: opts.App, Markers: opts.Markers})
	if err != nil {
		return err
	}
	_, err = b.run(ctx, "raise window", script)
	return err
}

func (b *Bridge) RaiseIndex(ctx context.Context, opts platform.WindowOptions) error {
	if opts.Index < 1 {
		return fmt.Errorf("raise window: invalid index %d", opts.Index)
	}
	script, err := render(raiseIndexTmpl, appData{App: opts.App, Markers: opts.Markers, Index: opts.Index})
	if err != nil {
		return err
	}
	_, err = b.run(ctx, "raise window index", script)
	return err
}

func (b *Bridge) PushToBack(ctx context.Context, opts platform.WindowOptions) error {
	if len(opts.Markers) == 0 {
		return fmt.Errorf("push window back: no title markers")
	}
	script, err := render(pushBackTmpl, appData{App: opts.App, Markers: opts.Markers})
	if err != nil {
		return err
	}
	_, err = b.run(ctx, "push window back", script)
	return err
}

func (b *Bridge) HideApp(ctx context.Context, app string) error {
	script, err := render(hideTmpl, appData{App: app})
	if err != nil {
		return err
	}
	_, err = b.run(ctx, "hide app", script)
	return err
}

// ListWindows lists the windows of opts.App through System Events. It
// needs no window-server access, so it serves builds without cgo. An
// application name is required.
func (b *Bridge) ListWindows(ctx context.Context, opts platform.ListOptions) ([]model.Window, error) {
	if opts.App == "" {
		return nil, fmt.Errorf("list windows: an application name is required")
	}
	script, err := render(listTmpl, appData{App: opts.App})
	if err != nil {
		return nil, err
	}
	out, err := b.run(ctx, "list windows", script)
	if err != nil {
		return nil, err
	}
	windows := parseWindowList(opts.App, out)
	if opts.OnScreenOnly {
		visible := windows[:0]
		for _, w := range windows {
			if w.OnScreen {
				visible = append(visible, w)
			}
		}
		windows = visible
	}
	return windows, nil
}

func parseWindowList(app, out string) []model.Window {
	windows := []model.Window{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) < 3 {
			continue
		}
		windows = append(windows, model.Window{
			App:      app,
			Title:    fields[0],
			OnScreen: fields[1] == "true" && fields[2] != "true",
		})
	}
	titled := model.OwnedBy(windows, app)
	model.Reindex(titled)
	return titled
}
