//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>

typedef struct {
	char *owner;
	char *title;
	int pid;
	int windowID;
	int layer;
	int onScreen;
} cg_window;

static char *cf_to_cstr(CFStringRef s) {
	if (s == NULL) {
		char *empty = malloc(1);
		empty[0] = 0;
		return empty;
	}
	CFIndex len = CFStringGetLength(s);
	CFIndex max = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
	char *buf = malloc(max);
	if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
		buf[0] = 0;
	}
	return buf;
}

static int dict_int(CFDictionaryRef d, CFStringRef key) {
	CFNumberRef n = (CFNumberRef)CFDictionaryGetValue(d, key);
	int v = 0;
	if (n != NULL) {
		CFNumberGetValue(n, kCFNumberIntType, &v);
	}
	return v;
}

static int cg_list(int onScreenOnly, cg_window **out, int *count) {
	CGWindowListOption opts = kCGWindowListExcludeDesktopElements;
	if (onScreenOnly) {
		opts |= kCGWindowListOptionOnScreenOnly;
	}
	CFArrayRef list = CGWindowListCopyWindowInfo(opts, kCGNullWindowID);
	if (list == NULL) {
		return -1;
	}
	CFIndex n = CFArrayGetCount(list);
	cg_window *ws = calloc(n > 0 ? n : 1, sizeof(cg_window));
	for (CFIndex i = 0; i < n; i++) {
		CFDictionaryRef d = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);
		ws[i].owner = cf_to_cstr((CFStringRef)CFDictionaryGetValue(d, kCGWindowOwnerName));
		ws[i].title = cf_to_cstr((CFStringRef)CFDictionaryGetValue(d, kCGWindowName));
		ws[i].pid = dict_int(d, kCGWindowOwnerPID);
		ws[i].windowID = dict_int(d, kCGWindowNumber);
		ws[i].layer = dict_int(d, kCGWindowLayer);
		CFBooleanRef on = (CFBooleanRef)CFDictionaryGetValue(d, kCGWindowIsOnscreen);
		ws[i].onScreen = (on != NULL && CFBooleanGetValue(on)) ? 1 : 0;
	}
	CFRelease(list);
	*out = ws;
	*count = (int)n;
	return 0;
}

static void cg_free(cg_window *ws, int count) {
	for (int i = 0; i < count; i++) {
		free(ws[i].owner);
		free(ws[i].title);
	}
	free(ws);
}

static int screen_capture_granted(void) {
	return CGPreflightScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"
import (
	"context"
	"fmt"
	"strings"
	"unsafe"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

// CGLister implements platform.WindowLister with CGWindowListCopyWindowInfo.
type CGLister struct{}

// NewCGLister creates a new CoreGraphics window lister.
func NewCGLister() *CGLister {
	return &CGLister{}
}

// ScreenCaptureGranted reports whether the process may read window titles.
// Since macOS 10.15 the window server blanks kCGWindowName without it.
func ScreenCaptureGranted() bool {
	return C.screen_capture_granted() != 0
}

// newLister prefers the window server and falls back to System Events when
// titles would come back blank.
func newLister(fallback platform.WindowLister) platform.WindowLister {
	if !ScreenCaptureGranted() {
		return fallback
	}
	return NewCGLister()
}

// ListWindows returns layer-0 windows front to back. Without OnScreenOnly
// the list includes hidden and minimized windows.
func (l *CGLister) ListWindows(_ context.Context, opts platform.ListOptions) ([]model.Window, error) {
	var cWindows *C.cg_window
	var cCount C.int

	onScreen := C.int(0)
	if opts.OnScreenOnly {
		onScreen = 1
	}
	if C.cg_list(onScreen, &cWindows, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.cg_free(cWindows, cCount)

	count := int(cCount)
	windows := []model.Window{}
	if count == 0 {
		return windows, nil
	}

	cSlice := unsafe.Slice(cWindows, count)
	perApp := make(map[string]int)
	for i := 0; i < count; i++ {
		cw := cSlice[i]

		// Layer 0 only (real application windows)
		if int(cw.layer) != 0 {
			continue
		}

		appName := C.GoString(cw.owner)
		title := C.GoString(cw.title)
		if title == "" {
			continue
		}
		if opts.App != "" && !strings.EqualFold(appName, opts.App) {
			continue
		}

		key := strings.ToLower(appName)
		perApp[key]++

		windows = append(windows, model.Window{
			App:      appName,
			PID:      int(cw.pid),
			ID:       int(cw.windowID),
			Title:    title,
			Index:    perApp[key],
			OnScreen: cw.onScreen != 0,
		})
	}
	return windows, nil
}
