package platform

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Name          string
	Lister        WindowLister
	Inspector     AppInspector
	WindowManager WindowManager
	Launcher      Launcher
}

// ErrUnsupported is returned when no backend is available.
var ErrUnsupported = fmt.Errorf("chatgpt-toggle is not supported on %s/%s; supported: darwin, linux under sway", runtime.GOOS, runtime.GOARCH)

// ProviderFunc constructs a Provider. Backends register one from init().
type ProviderFunc func() (*Provider, error)

type registration struct {
	name      string
	priority  int
	available func() bool
	fn        ProviderFunc
}

var (
	registryMu sync.Mutex
	registry   []registration
)

// Register adds a backend. available reports whether the backend can run in
// the current session; higher priority wins when several are available.
func Register(name string, priority int, available func() bool, fn ProviderFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, registration{name: name, priority: priority, available: available, fn: fn})
	sort.SliceStable(registry, func(i, j int) bool { return registry[i].priority > registry[j].priority })
}

// Backends returns the names of all registered backends, highest priority first.
func Backends() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.name)
	}
	return names
}

// NewProvider returns the provider for backend, or the highest-priority
// available backend when name is "" or "auto".
func NewProvider(name string) (*Provider, error) {
	registryMu.Lock()
	regs := append([]registration(nil), registry...)
	registryMu.Unlock()

	for _, r := range regs {
		if name != "" && name != "auto" {
			if r.name != name {
				continue
			}
			return r.fn()
		}
		if r.available == nil || r.available() {
			return r.fn()
		}
	}
	if name != "" && name != "auto" {
		return nil, fmt.Errorf("unknown backend %q (registered: %v)", name, Backends())
	}
	return nil, ErrUnsupported
}
