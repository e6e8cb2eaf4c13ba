package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"termctl/internal/session"
	"termctl/internal/store"
)

// Run launches an interactive settings form. It edits the settings block of
// the local state file in place; a running TUI picks the change up through
// its file watcher.
func Run() error {
	st, _ := store.LoadLocal()
	current, ok := store.LoadLocalSettings()
	if !ok {
		current = session.DefaultSettings()
	}

	theme := string(current.Theme)
	fontSize := string(current.FontSize)
	timestamps := current.ShowTimestamps

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	formTheme := huh.ThemeCharm()
	formTheme.FieldSeparator = lipgloss.NewStyle()
	formTheme.Blurred.Title = formTheme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	formTheme.Focused.Title = formTheme.Focused.Title.Width(18).Foreground(green).Bold(true)
	formTheme.Blurred.SelectedOption = formTheme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	formTheme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	formTheme.Focused.Base = formTheme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Terminal appearance, saved locally"),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", string(session.ThemeDark)),
					huh.NewOption("Light", string(session.ThemeLight)),
					huh.NewOption("Solarized", string(session.ThemeSolarized)),
				).
				Value(&theme),
			huh.NewSelect[string]().
				Title("Font size").
				Options(
					huh.NewOption("Small", string(session.FontSM)),
					huh.NewOption("Medium", string(session.FontMD)),
					huh.NewOption("Large", string(session.FontLG)),
				).
				Value(&fontSize),
			huh.NewConfirm().
				Title("Timestamps").
				Affirmative("Show").
				Negative("Hide").
				Value(&timestamps),
		),
	).WithTheme(formTheme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	st.Settings = session.Settings{
		Theme:          session.Theme(theme),
		FontSize:       session.FontSize(fontSize),
		ShowTimestamps: timestamps,
	}
	store.SaveLocal(st)
	fmt.Println("\n✓ settings saved")
	return nil
}
