// Package darwin provides the macOS backend: window enumeration through
// CoreGraphics and window commands through the AppleScript bridge.
// Window enumeration requires CGo; without it, System Events is used.
package darwin
