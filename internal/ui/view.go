package ui

import (
	"fmt"
	"strings"

	"sizef"
)

func (m Model) View() string {
	return m.viewHeader() + "\n\n" + m.viewEntries() + m.viewFooter()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("sizef: largest files under " + m.root)
	var status string
	if m.scanning {
		status = m.styles.Spinner.Render(m.spinner.View()) + " " +
			m.styles.Faint.Render(fmt.Sprintf("scanning… %d files so far", m.files))
	} else {
		status = m.styles.Subtitle.Render(fmt.Sprintf("%d files • %s total • q: quit",
			m.files, m.renderSize(m.total)))
	}
	return title + "\n" + status
}

func (m Model) viewEntries() string {
	if len(m.entries) == 0 {
		if m.scanning {
			return ""
		}
		return m.styles.Faint.Render("no files found") + "\n"
	}

	largest := m.entries[0].Bytes
	var b strings.Builder
	for _, e := range m.entries {
		frac := 0.0
		if largest > 0 {
			frac = float64(e.Bytes) / float64(largest)
		}
		b.WriteString(fmt.Sprintf("%s %12s  %s\n",
			m.bar.ViewAs(frac),
			m.styles.Size.Render(m.renderSize(e.Bytes)),
			m.styles.Path.Render(truncate(e.Path, m.pathWidth())),
		))
	}
	return b.String()
}

func (m Model) viewFooter() string {
	var parts []string
	if m.skipped > 0 {
		parts = append(parts, m.styles.Warning.Render(fmt.Sprintf("%d entries skipped", m.skipped)))
	}
	if m.err != nil {
		parts = append(parts, m.styles.Error.Render(m.err.Error()))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, "\n") + "\n"
}

func (m Model) renderSize(n uint64) string {
	return sizef.New(n, m.pfx, m.sep).Render(m.opts.Precision) + m.opts.Unit
}

// pathWidth leaves room for the bar and size columns.
func (m Model) pathWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width - 40
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
