package ui

import (
	"slices"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (header, focus, selected rows)
	Primary string
	// Secondary is used for key hints and info flashes
	Secondary string

	// BgSelected is the selected row background (defaults to Primary if empty)
	BgSelected string

	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Backdrop is the color page text is dimmed to behind an open dialog
	Backdrop string

	Warning string
	Error   string
	Success string

	Border string

	// MarkdownStyle is the glamour standard style for descriptions
	MarkdownStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:          "Dark Purple",
		Primary:       "#7C3AED",
		Secondary:     "#06B6D4",
		Text:          "#F9FAFB",
		TextMuted:     "#B0B8C4",
		TextInverse:   "#1F2937",
		Backdrop:      "#4B5563",
		Warning:       "#F59E0B",
		Error:         "#EF4444",
		Success:       "#10B981",
		Border:        "#374151",
		MarkdownStyle: "dark",
	},
	ThemeNord: {
		Name:          "Nord",
		Primary:       "#88C0D0",
		Secondary:     "#81A1C1",
		Text:          "#ECEFF4",
		TextMuted:     "#D8DEE9",
		TextInverse:   "#2E3440",
		Backdrop:      "#4C566A",
		Warning:       "#EBCB8B",
		Error:         "#BF616A",
		Success:       "#A3BE8C",
		Border:        "#4C566A",
		MarkdownStyle: "dark",
	},
	ThemeDracula: {
		Name:          "Dracula",
		Primary:       "#BD93F9",
		Secondary:     "#8BE9FD",
		Text:          "#F8F8F2",
		TextMuted:     "#6272A4",
		TextInverse:   "#282A36",
		Backdrop:      "#44475A",
		Warning:       "#FFB86C",
		Error:         "#FF5555",
		Success:       "#50FA7B",
		Border:        "#44475A",
		MarkdownStyle: "dracula",
	},
	ThemeGruvbox: {
		Name:          "Gruvbox Dark",
		Primary:       "#FE8019",
		Secondary:     "#83A598",
		Text:          "#EBDBB2",
		TextMuted:     "#A89984",
		TextInverse:   "#282828",
		Backdrop:      "#504945",
		Warning:       "#FABD2F",
		Error:         "#FB4934",
		Success:       "#B8BB26",
		Border:        "#504945",
		MarkdownStyle: "dark",
	},
	ThemeLight: {
		Name:          "Light",
		Primary:       "#6366F1",
		Secondary:     "#0891B2",
		BgSelected:    "#E0E7FF",
		Text:          "#1F2937",
		TextMuted:     "#6B7280",
		TextInverse:   "#FFFFFF",
		Backdrop:      "#D1D5DB",
		Warning:       "#D97706",
		Error:         "#DC2626",
		Success:       "#059669",
		Border:        "#D1D5DB",
		MarkdownStyle: "light",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeLight,
	}
}

// IsThemeName reports whether name is a built-in theme
func IsThemeName(name string) bool {
	return slices.Contains(ThemeNames(), ThemeName(name))
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles. Components
// built afterwards pick up the new palette.
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	resetMarkdownRenderers()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorBackdrop = lipgloss.Color(t.Backdrop)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorPrimary)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 2)
}
