package ui

import (
	"context"
	"sort"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sizef"
	"sizef/internal/model"
	"sizef/internal/scan"
)

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	root string
	opts model.Options
	pfx  sizef.Prefixes
	sep  sizef.Separator

	// Scan state
	entries  []scan.Entry // largest first, at most opts.Top
	total    uint64
	files    int
	skipped  int
	scanning bool
	err      error

	// UI
	width, height int
	styles        Styles
	spinner       spinner.Model
	bar           bubblesprogress.Model

	// Internal event channel used by the scanner to feed tea messages
	eventCh chan tea.Msg
}

func NewModel(ctx context.Context, root string, opts model.Options, pfx sizef.Prefixes, sep sizef.Separator) Model {
	c, cancel := context.WithCancel(ctx)
	sty := defaultStyles()

	sp := spinner.New()
	sp.Style = sty.Spinner
	bar := bubblesprogress.New(
		bubblesprogress.WithDefaultGradient(),
		bubblesprogress.WithWidth(24),
	)

	return Model{
		ctx:      c,
		cancel:   cancel,
		root:     root,
		opts:     opts,
		pfx:      pfx,
		sep:      sep,
		scanning: true,
		styles:   sty,
		spinner:  sp,
		bar:      bar,
		eventCh:  make(chan tea.Msg, 256),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.listenEventsCmd(),
		m.startScanCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case entryMsg:
		m.total += msg.E.Bytes
		m.files++
		m.entries = insertLargest(m.entries, msg.E, m.opts.Top)

	case scanDoneMsg:
		m.scanning = false
		m.skipped = msg.R.Skipped
		if msg.Err != nil {
			m.err = msg.Err
		}
	}

	var cmds []tea.Cmd
	if m.scanning {
		var c tea.Cmd
		m.spinner, c = m.spinner.Update(msg)
		if c != nil {
			cmds = append(cmds, c)
		}
	}
	// Keep listening for scanner events
	cmds = append(cmds, m.listenEventsCmd())
	return m, tea.Batch(cmds...)
}

func (m Model) listenEventsCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case msg := <-m.eventCh:
			return msg
		}
	}
}

func (m Model) startScanCmd() tea.Cmd {
	return func() tea.Msg {
		go func() {
			res, err := scan.Walk(m.ctx, m.root, func(e scan.Entry) {
				select {
				case m.eventCh <- entryMsg{E: e}:
				case <-m.ctx.Done():
				}
			})
			select {
			case m.eventCh <- scanDoneMsg{R: res, Err: err}:
			case <-m.ctx.Done():
			}
		}()
		return nil
	}
}

// insertLargest keeps entries sorted by size descending, capped at max.
func insertLargest(entries []scan.Entry, e scan.Entry, max int) []scan.Entry {
	if max <= 0 {
		return entries
	}
	if len(entries) == max && e.Bytes <= entries[len(entries)-1].Bytes {
		return entries
	}
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Bytes < e.Bytes })
	entries = append(entries, scan.Entry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = e
	if len(entries) > max {
		entries = entries[:max]
	}
	return entries
}
