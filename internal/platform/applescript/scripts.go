package applescript

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
)

// fieldSep separates fields in list output; titles never contain it.
const fieldSep = "\x1f"

// Quote renders s as an AppleScript string literal.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// MatchExpr renders a boolean expression testing variable against every
// marker. AppleScript's contains ignores case by default. Blank markers are
// dropped; with none left the expression is false.
func MatchExpr(variable string, markers []string) string {
	markers = model.NewTitleMatcher(markers).Markers()
	if len(markers) == 0 {
		return "false"
	}
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		parts = append(parts, fmt.Sprintf("%s contains %s", variable, Quote(m)))
	}
	return strings.Join(parts, " or ")
}

var funcs = template.FuncMap{
	"quote": Quote,
	"match": MatchExpr,
}

var (
	isRunningTmpl = template.Must(template.New("isRunning").Funcs(funcs).Parse(
		`tell application "System Events" to return (name of processes) contains {{quote .App}}`))

	frontmostScript = `tell application "System Events" to return name of first application process whose frontmost is true`

	raiseTmpl = template.Must(template.New("raise").Funcs(funcs).Parse(`tell application {{quote .App}}
	activate
	repeat with w in windows
		set windowTitle to name of w
		if {{match "windowTitle" .Markers}} then
			set index of w to 1
			exit repeat
		end if
	end repeat
end tell`))

	// The window after the first match in the application's own window
	// order is raised; Index applies only when no window matches.
	raiseIndexTmpl = template.Must(template.New("raiseIndex").Funcs(funcs).Parse(`tell application {{quote .App}}
	set n to count of windows
	set nextIndex to {{.Index}}
	repeat with i from 1 to n
		try
			set windowTitle to name of window i
			if {{match "windowTitle" .Markers}} then
				set nextIndex to (i mod n) + 1
				exit repeat
			end if
		end try
	end repeat
	if n >= nextIndex then
		set index of window nextIndex to 1
	end if
end tell`))

	pushBackTmpl = template.Must(template.New("pushBack").Funcs(funcs).Parse(`tell application {{quote .App}}
	repeat with w in windows
		set windowTitle to name of w
		if {{match "windowTitle" .Markers}} then
			set index of w to (count of windows)
			exit repeat
		end if
	end repeat
end tell`))

	hideTmpl = template.Must(template.New("hide").Funcs(funcs).Parse(
		`tell application "System Events" to set visible of process {{quote .App}} to false`))

	// Emits one line per window: title, process visible, minimized.
	listTmpl = template.Must(template.New("list").Funcs(funcs).Parse(`set sep to character id 31
set out to ""
tell application "System Events"
	if not (exists process {{quote .App}}) then return ""
	tell process {{quote .App}}
		set procVisible to visible
		repeat with w in windows
			try
				set windowTitle to name of w
				if windowTitle is missing value then set windowTitle to ""
				set isMin to false
				try
					set isMin to value of attribute "AXMinimized" of w
				end try
				set out to out & windowTitle & sep & procVisible & sep & isMin & linefeed
			end try
		end repeat
	end tell
end tell
return out`))
)

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s script: %w", t.Name(), err)
	}
	return b.String(), nil
}
