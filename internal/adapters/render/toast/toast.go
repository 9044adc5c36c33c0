// Package toast draws the active notifications as shrinking progress bars
// until the scheduler drains.
package toast

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/witrix-cli/internal/domain"
)

const (
	defaultFrameInterval = 50 * time.Millisecond
	defaultBarWidth      = 24
)

var ErrUnexpectedToastModel = errors.New("unexpected final toast model type")

// Source is the notification feed; the scheduler satisfies it.
type Source interface {
	Active() []domain.Notification
}

type Options struct {
	FrameInterval time.Duration
	BarWidth      int
}

type frameMsg time.Time

type model struct {
	source   Source
	interval time.Duration
	bar      progress.Model
	message  lipgloss.Style
	items    []domain.Notification
	done     bool
}

func newModel(source Source, opts Options) model {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	return model{
		source:   source,
		interval: interval,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage()),
		message:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		items:    source.Active(),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.items) == 0 {
		return tea.Quit
	}

	return m.nextFrame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		m.items = m.source.Active()
		if len(m.items) == 0 {
			m.done = true
			return m, tea.Quit
		}
		return m, m.nextFrame()
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}

	return renderFrame(m.items, m.bar, m.message)
}

func (m model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// renderFrame shows the remaining lifetime of each toast: a full bar for a
// fresh one, an empty bar right before removal.
func renderFrame(items []domain.Notification, bar progress.Model, style lipgloss.Style) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		remaining := 1 - item.Progress/100
		if remaining < 0 {
			remaining = 0
		}
		lines = append(lines, bar.ViewAs(remaining)+" "+style.Render(item.Message))
	}

	return strings.Join(lines, "\n")
}

// Run blocks until source has no active notifications or ctx is done.
func Run(ctx context.Context, output io.Writer, source Source, opts Options) error {
	p := tea.NewProgram(
		newModel(source, opts),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedToastModel
	}

	return nil
}
