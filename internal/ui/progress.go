package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	// progressInterval is the wall-time cadence of simulated progress.
	progressInterval = 800 * time.Millisecond

	// progressStall is the percentage the simulator refuses to pass until the
	// outstanding operation actually resolves.
	progressStall = 95
)

// advanceProgress applies the deterministic advancement rule: fast early,
// slower as the counter climbs, stalled at [progressStall]. The counter never
// decreases and never exceeds the stall point.
func advanceProgress(p int) int {
	switch {
	case p < 50:
		return p + 5
	case p < 80:
		return p + 2
	case p < progressStall:
		return p + 1
	default:
		return p
	}
}

// simulator produces synthetic progress while a generation run is
// outstanding. It carries no relation to actual backend completion.
//
// Each activation gets a fresh run id; ticks scheduled by an earlier
// activation identify themselves with the stale id and are dropped, so at
// most one simulation loop advances the counter at a time.
type simulator struct {
	percent int
	run     uuid.UUID
	active  bool
}

// start activates the simulator, resetting the counter, and returns the first
// tick command. Starting an already-active simulator begins a new run; the
// old run's pending tick becomes stale.
func (s *simulator) start() tea.Cmd {
	s.percent = 0
	s.run = uuid.New()
	s.active = true
	return s.tick()
}

// stop deactivates the simulator. Pending ticks become stale.
func (s *simulator) stop() {
	s.active = false
	s.run = uuid.Nil
}

// advance processes a tick, returning the follow-up tick command. Ticks from
// a stale run, or arriving while inactive, are ignored. Once the counter
// stalls no further ticks are scheduled.
func (s *simulator) advance(msg progressTickMsg) tea.Cmd {
	if !s.active || msg.run != s.run {
		return nil
	}

	s.percent = advanceProgress(s.percent)
	if s.percent >= progressStall {
		return nil
	}
	return s.tick()
}

func (s *simulator) tick() tea.Cmd {
	run := s.run
	return tea.Tick(progressInterval, func(time.Time) tea.Msg {
		return progressTickMsg{run: run}
	})
}
