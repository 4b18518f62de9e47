// Package platform provides a console stand-in for the speech platform:
// it renders agent lines to a terminal and reads caller utterances from
// an input stream, delivering them to the dialogue core one at a time.
package platform

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// AgentColor styles lines spoken by the bank agent.
	AgentColor = lipgloss.Color("#4ECDC4") // Teal
	// CallerColor styles the caller input prompt.
	CallerColor = lipgloss.Color("#FFE66D") // Yellow
	// SubtleColor styles less prominent annotations.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// AgentStyle formats spoken agent output.
	AgentStyle = lipgloss.NewStyle().
			Foreground(AgentColor)

	// AgentLabelStyle formats the speaker label before agent lines.
	AgentLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AgentColor)

	// CallerPromptStyle formats the caller's input prompt.
	CallerPromptStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(CallerColor)

	// SubtleStyle formats annotations such as interruptibility hints.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)
