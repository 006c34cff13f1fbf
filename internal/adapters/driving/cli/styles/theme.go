// Package styles provides the colour theme and lipgloss styles used by the
// CLI output.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

// Theme defines the colour palette of the CLI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Good marks passing checks and auspicious numbers.
	Good lipgloss.Color

	// Fair marks neutral numbers.
	Fair lipgloss.Color

	// Bad marks failing checks and inauspicious numbers.
	Bad lipgloss.Color

	// Elements maps each of the five elements to its traditional colour.
	Elements map[domain.Element]lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Good:    lipgloss.Color("#A6E3A1"), // Green
		Fair:    lipgloss.Color("#F9E2AF"), // Yellow
		Bad:     lipgloss.Color("#F38BA8"), // Red
		Elements: map[domain.Element]lipgloss.Color{
			domain.ElementWood:  lipgloss.Color("#40A02B"),
			domain.ElementFire:  lipgloss.Color("#E64553"),
			domain.ElementEarth: lipgloss.Color("#DF8E1D"),
			domain.ElementMetal: lipgloss.Color("#BCC0CC"),
			domain.ElementWater: lipgloss.Color("#1E66F5"),
		},
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Label style for field names.
	Label lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Good, Fair and Bad colour verdicts.
	Good lipgloss.Style
	Fair lipgloss.Style
	Bad  lipgloss.Style

	// Box style for bordered summaries.
	Box lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Label: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Good: lipgloss.NewStyle().
			Foreground(theme.Good),

		Fair: lipgloss.NewStyle().
			Foreground(theme.Fair),

		Bad: lipgloss.NewStyle().
			Foreground(theme.Bad),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Fortune renders a pillar fortune label, preferring the five-tier level.
func (s *Styles) Fortune(f domain.PillarFortune) string {
	label := f.Tier.String()
	if f.Level != "" {
		label = f.Level.String()
	}
	return s.verdict(f).Render(label)
}

func (s *Styles) verdict(f domain.PillarFortune) lipgloss.Style {
	switch f.Level {
	case domain.LuckySupreme, domain.LuckyLucky:
		return s.Good
	case domain.LuckyFair:
		return s.Fair
	case domain.LuckyUnlucky, domain.LuckyMostUnlucky:
		return s.Bad
	}
	switch f.Tier {
	case domain.FortuneGreatLuck:
		return s.Good
	case domain.FortuneLuck:
		return s.Fair
	default:
		return s.Bad
	}
}

// Element renders an element with its Korean label, e.g. "wood(목)".
func (s *Styles) Element(e domain.Element) string {
	style := lipgloss.NewStyle()
	if c, ok := s.theme.Elements[e]; ok {
		style = style.Foreground(c)
	}
	return style.Render(e.String() + "(" + e.Label() + ")")
}

// Elements renders an arrangement of elements joined by arrows.
func (s *Styles) Elements(arrangement []domain.Element) string {
	parts := make([]string, len(arrangement))
	for i, e := range arrangement {
		parts[i] = s.Element(e)
	}
	return strings.Join(parts, " → ")
}

// Check renders a pass or fail mark.
func (s *Styles) Check(passed bool) string {
	if passed {
		return s.Good.Render("✓")
	}
	return s.Bad.Render("✗")
}

// Bar renders score out of maxScore as a bar of width cells.
func (s *Styles) Bar(score, maxScore, width int) string {
	if maxScore <= 0 || width <= 0 {
		return ""
	}
	filled := min(max(score*width/maxScore, 0), width)
	style := s.Bad
	switch {
	case score*100 >= maxScore*70:
		style = s.Good
	case score*100 >= maxScore*40:
		style = s.Fair
	}
	return style.Render(strings.Repeat("█", filled)) + s.Muted.Render(strings.Repeat("░", width-filled))
}
