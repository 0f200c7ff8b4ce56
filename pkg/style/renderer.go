package style

import (
	"strings"
)

// RenderRunReport renders the outcome of one helper run: the operation
// name, a status badge, and the external commands that were issued.
func RenderRunReport(operation string, commands []string, runErr error) string {
	var b strings.Builder

	badge := StatusStyle(StatusSuccess).Sprint(" OK ")
	if runErr != nil {
		badge = StatusStyle(StatusError).Sprint(" FAIL ")
	}
	b.WriteString(badge + " " + TitleStyle.Render(operation) + "\n")

	if runErr != nil {
		b.WriteString(runErr.Error() + "\n")
	}

	if len(commands) > 0 {
		b.WriteString(TitleStyle.Render("Commands issued") + "\n")
		for _, command := range commands {
			b.WriteString("  " + MutedStyle.Render(command) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
