package bot

import (
	"fmt"
	"strings"

	"github.com/mazznoer/colorgrad"
)

// GetBanner returns the startup banner with a left-to-right color fade
func GetBanner(version string) string {
	art := `
 ____                        ____             _
|  _ \     ___      ___     / ___|    __ _   | |_     ___
| |_) |   / _ \    / _ \   | |  _    / _' |  | __|   / _ \
|  __/   | (_) |  |  __/   | |_| |  | (_| |  | |_   |  __/
|_|       \___/    \___|    \____|   \__,_|   \__|   \___|
 .  .  .  all  prompts  lead  through  the  gate  [v` + version + `]
`
	lines := strings.Split(art, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	// Discord blurple fading to white across the widest line
	grad, _ := colorgrad.NewGradient().
		HtmlColors("#5865f2ff", "#fdfdfdff").
		Build()
	colors := grad.Colors(uint(width))

	var out strings.Builder
	for _, line := range lines {
		for col, ch := range line {
			r, g, b, _ := colors[col].RGBA255()
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm%c", r, g, b, ch)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}
