package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"sizef"
	"sizef/internal/model"
)

// Run launches the TUI and blocks until the scan finishes and the user
// quits, or ctx is canceled.
func Run(ctx context.Context, root string, opts model.Options, pfx sizef.Prefixes, sep sizef.Separator) error {
	m := NewModel(ctx, root, opts, pfx, sep)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
