// Package sway is the Linux backend for the sway Wayland compositor.
// Windows are tree leaves; "hidden" means moved to the scratchpad.
package sway

import (
	"context"
	"fmt"
	"strings"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
	gosway "github.com/joshuarubin/go-sway"
)

const scratchpadWorkspace = "__i3_scratch"

// client is the subset of sway.Client this backend uses.
type client interface {
	GetTree(ctx context.Context) (*gosway.Node, error)
	RunCommand(ctx context.Context, command string) ([]gosway.RunCommandReply, error)
}

// Backend implements the platform lister, inspector and window manager
// over sway IPC.
type Backend struct {
	client client
}

// New connects to the sway socket named by $SWAYSOCK.
func New(ctx context.Context) (*Backend, error) {
	c, err := gosway.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to sway: %w", err)
	}
	return &Backend{client: c}, nil
}

type leaf struct {
	model.Window
	focused    bool
	scratchpad bool
}

func appName(n *gosway.Node) string {
	if n.AppID != nil && *n.AppID != "" {
		return *n.AppID
	}
	if n.WindowProperties != nil {
		return n.WindowProperties.Class
	}
	return ""
}

// leaves returns all application windows, focused first, then tree order.
func (b *Backend) leaves(ctx context.Context) ([]leaf, error) {
	root, err := b.client.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sway tree: %w", err)
	}

	var all []leaf
	var walk func(n *gosway.Node, scratch bool)
	walk = func(n *gosway.Node, scratch bool) {
		if n == nil {
			return
		}
		if n.Name == scratchpadWorkspace {
			scratch = true
		}
		if len(n.Nodes) == 0 && len(n.FloatingNodes) == 0 {
			if app := appName(n); app != "" {
				all = append(all, leaf{
					Window: model.Window{
						App:      app,
						ID:       int(n.ID),
						Title:    n.Name,
						OnScreen: n.Visible != nil && *n.Visible,
					},
					focused:    n.Focused,
					scratchpad: scratch,
				})
			}
			return
		}
		for _, c := range n.Nodes {
			walk(c, scratch)
		}
		for _, c := range n.FloatingNodes {
			walk(c, scratch)
		}
	}
	walk(root, false)

	ordered := make([]leaf, 0, len(all))
	for _, l := range all {
		if l.focused {
			ordered = append(ordered, l)
		}
	}
	for _, l := range all {
		if !l.focused {
			ordered = append(ordered, l)
		}
	}

	perApp := make(map[string]int)
	for i := range ordered {
		key := strings.ToLower(ordered[i].App)
		if ordered[i].Title == "" {
			continue
		}
		perApp[key]++
		ordered[i].Index = perApp[key]
	}
	return ordered, nil
}

func (b *Backend) appLeaves(ctx context.Context, app string) ([]leaf, error) {
	all, err := b.leaves(ctx)
	if err != nil {
		return nil, err
	}
	var out []leaf
	for _, l := range all {
		if l.Title != "" && strings.EqualFold(l.App, app) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (b *Backend) ListWindows(ctx context.Context, opts platform.ListOptions) ([]model.Window, error) {
	all, err := b.leaves(ctx)
	if err != nil {
		return nil, err
	}
	windows := []model.Window{}
	for _, l := range all {
		if l.Title == "" {
			continue
		}
		if opts.App != "" && !strings.EqualFold(l.App, opts.App) {
			continue
		}
		if opts.OnScreenOnly && !l.OnScreen {
			continue
		}
		windows = append(windows, l.Window)
	}
	return windows, nil
}

// IsRunning reports whether app owns at least one window; sway has no
// view of windowless processes.
func (b *Backend) IsRunning(ctx context.Context, app string) (bool, error) {
	all, err := b.leaves(ctx)
	if err != nil {
		return false, err
	}
	for _, l := range all {
		if strings.EqualFold(l.App, app) {
			return true, nil
		}
	}
	return false, nil
}

func (b *Backend) FrontmostApp(ctx context.Context) (string, error) {
	all, err := b.leaves(ctx)
	if err != nil {
		return "", err
	}
	for _, l := range all {
		if l.focused {
			return l.App, nil
		}
	}
	return "", nil
}

func (b *Backend) firstMatch(ctx context.Context, opts platform.WindowOptions) (leaf, error) {
	windows, err := b.appLeaves(ctx, opts.App)
	if err != nil {
		return leaf{}, err
	}
	for _, l := range windows {
		if opts.ID != 0 && l.ID == opts.ID {
			return l, nil
		}
	}
	for _, l := range windows {
		if opts.Matches(l.Window) {
			return l, nil
		}
	}
	return leaf{}, fmt.Errorf("no %s window matching %v", opts.App, opts.Markers)
}

func focusCommand(l leaf) string {
	if l.scratchpad {
		return fmt.Sprintf("[con_id=%d] scratchpad show", l.ID)
	}
	return fmt.Sprintf("[con_id=%d] focus", l.ID)
}

func (b *Backend) RaiseWindow(ctx context.Context, opts platform.WindowOptions) error {
	l, err := b.firstMatch(ctx, opts)
	if err != nil {
		return fmt.Errorf("raise window: %w", err)
	}
	return b.run(ctx, focusCommand(l))
}

func (b *Backend) RaiseIndex(ctx context.Context, opts platform.WindowOptions) error {
	windows, err := b.appLeaves(ctx, opts.App)
	if err != nil {
		return err
	}
	if opts.Index < 1 || opts.Index > len(windows) {
		return fmt.Errorf("raise window: index %d out of range (1..%d)", opts.Index, len(windows))
	}
	return b.run(ctx, focusCommand(windows[opts.Index-1]))
}

func (b *Backend) PushToBack(ctx context.Context, opts platform.WindowOptions) error {
	l, err := b.firstMatch(ctx, opts)
	if err != nil {
		return fmt.Errorf("push window back: %w", err)
	}
	return b.run(ctx, fmt.Sprintf("[con_id=%d] move scratchpad", l.ID))
}

func (b *Backend) HideApp(ctx context.Context, app string) error {
	windows, err := b.appLeaves(ctx, app)
	if err != nil {
		return err
	}
	var cmds []string
	for _, l := range windows {
		if !l.scratchpad {
			cmds = append(cmds, fmt.Sprintf("[con_id=%d] move scratchpad", l.ID))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return b.run(ctx, strings.Join(cmds, "; "))
}

func (b *Backend) run(ctx context.Context, command string) error {
	replies, err := b.client.RunCommand(ctx, command)
	if err != nil {
		return fmt.Errorf("sway %q: %w", command, err)
	}
	for _, r := range replies {
		if !r.Success {
			return fmt.Errorf("sway %q: %s", command, r.Error)
		}
	}
	return nil
}
