//go:build linux

package sway

import (
	"context"
	"os"

	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

func init() {
	available := func() bool { return os.Getenv("SWAYSOCK") != "" }
	platform.Register("sway", 5, available, func() (*platform.Provider, error) {
		b, err := New(context.Background())
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Name:          "sway",
			Lister:        b,
			Inspector:     b,
			WindowManager: b,
			Launcher:      platform.ExecLauncher{},
		}, nil
	})
}
