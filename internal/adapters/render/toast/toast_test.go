package toast

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/witrix-cli/internal/domain"
)

// scriptedSource returns one batch per call and then nothing.
type scriptedSource struct {
	mu      sync.Mutex
	batches [][]domain.Notification
	calls   int
}

func (s *scriptedSource) Active() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}

func TestModelQuitsWhenSourceDrains(t *testing.T) {
	source := &scriptedSource{batches: [][]domain.Notification{
		{{ID: 1, Message: "Saved", Progress: 10}},
		{{ID: 1, Message: "Saved", Progress: 60}},
	}}

	m := newModel(source, Options{})
	require.Len(t, m.items, 1)
	require.NotNil(t, m.Init())

	updated, cmd := m.Update(frameMsg(time.Now()))
	m = updated.(model)
	assert.Equal(t, 60.0, m.items[0].Progress)
	require.NotNil(t, cmd)

	updated, cmd = m.Update(frameMsg(time.Now()))
	m = updated.(model)
	assert.True(t, m.done)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelIgnoresUnrelatedMessages(t *testing.T) {
	source := &scriptedSource{batches: [][]domain.Notification{{{ID: 1, Message: "Hi"}}}}
	m := newModel(source, Options{})

	updated, cmd := m.Update(tea.KeyMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, m.items, updated.(model).items)
}

func TestInitQuitsWithoutNotifications(t *testing.T) {
	m := newModel(&scriptedSource{}, Options{})

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderFrameListsMessagesInOrder(t *testing.T) {
	m := newModel(&scriptedSource{}, Options{BarWidth: 10})

	frame := renderFrame([]domain.Notification{
		{ID: 1, Message: "Guild selected", Progress: 0},
		{ID: 2, Message: "Signed out", Progress: 100},
	}, m.bar, lipgloss.NewStyle())

	lines := bytes.Split([]byte(frame), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "Guild selected")
	assert.Contains(t, string(lines[1]), "Signed out")
}

func TestRunReturnsOnceDrained(t *testing.T) {
	source := &scriptedSource{batches: [][]domain.Notification{
		{{ID: 1, Message: "Saved"}},
		{{ID: 1, Message: "Saved", Progress: 50}},
	}}

	var out bytes.Buffer
	err := Run(context.Background(), &out, source, Options{FrameInterval: time.Millisecond})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, source.calls, 3)
}
