//go:build darwin

package darwin

import (
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
	"github.com/bekkevard/chatgpt-toggle/internal/platform/applescript"
)

func init() {
	platform.Register("darwin", 10, nil, func() (*platform.Provider, error) {
		bridge := applescript.NewBridge(applescript.NewOSAScript())
		return &platform.Provider{
			Name:          "darwin",
			Lister:        newLister(bridge),
			Inspector:     bridge,
			WindowManager: bridge,
			Launcher:      platform.ExecLauncher{},
		}, nil
	})
}
