package utils

import "github.com/pterm/pterm"

// PrintBanner prints the fixturegen banner
func PrintBanner(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Printf(" fixturegen v%s ", version)
	pterm.Println()
}

// PrintSection prints a section header
func PrintSection(title string) {
	pterm.DefaultSection.Println(title)
}
