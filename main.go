package main

import (
	"github.com/bekkevard/chatgpt-toggle/cmd"

	_ "github.com/bekkevard/chatgpt-toggle/internal/platform/darwin"
	_ "github.com/bekkevard/chatgpt-toggle/internal/platform/sway"
)

func main() {
	cmd.Execute()
}
