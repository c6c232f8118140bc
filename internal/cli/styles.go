package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wohlbier/taucmdr/internal/prereq"
)

var errorBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("9")).
	Padding(0, 1)

// PrereqBanner renders the bordered diagnostic printed when a startup
// prerequisite is missing.
func PrereqBanner(r prereq.Result) string {
	msg := fmt.Sprintf("Cannot configure the installation:\n%s\n\nInstall Python %s or later with setuptools and try again.",
		r.Detail, prereq.MinInterpreter)
	return errorBoxStyle.Render(msg)
}
