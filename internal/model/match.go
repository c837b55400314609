package model

import "strings"

// TitleMatcher matches window titles against a set of case-insensitive
// substrings.
type TitleMatcher struct {
	markers []string
}

// NewTitleMatcher lowercases and de-blanks markers. Empty markers are
// dropped so they cannot match every title.
func NewTitleMatcher(markers []string) TitleMatcher {
	m := TitleMatcher{}
	for _, s := range markers {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			m.markers = append(m.markers, s)
		}
	}
	return m
}

// Markers returns the normalized markers.
func (m TitleMatcher) Markers() []string {
	return m.markers
}

// Match reports whether title contains any marker.
func (m TitleMatcher) Match(title string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(title)
	for _, s := range m.markers {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first window in windows whose title matches, or nil.
func (m TitleMatcher) FirstMatch(windows []Window) *Window {
	for i := range windows {
		if m.Match(windows[i].Title) {
			w := windows[i]
			return &w
		}
	}
	return nil
}

// OwnedBy filters windows to those owned by app (case-insensitive) that
// carry a title. Untitled windows are helper surfaces, not user windows.
func OwnedBy(windows []Window, app string) []Window {
	out := []Window{}
	for _, w := range windows {
		if w.Title == "" || !strings.EqualFold(w.App, app) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Reindex assigns 1-based Index values in slice order.
func Reindex(windows []Window) {
	for i := range windows {
		windows[i].Index = i + 1
	}
}
