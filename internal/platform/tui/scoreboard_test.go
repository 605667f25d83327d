package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func TestScoreboardShowsRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(storage.RunRecord{GameID: "runner", Score: 321, Level: 2, Player: "alice"})
	store.SaveRun(storage.RunRecord{GameID: "runner", Score: 45, Level: 1})
	store.SetHighScore("runnerHighScore", 321)

	m := NewScoreboardModel(store, "runner", "runnerHighScore", 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "321", "alice", "Runs:   2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardNarrowAndEmpty(t *testing.T) {
	m := NewScoreboardModel(openTestStore(t), "runner", "runnerHighScore", 60, 20)
	view := m.View()

	if !strings.Contains(view, "Best: 0  Runs: 0") {
		t.Errorf("narrow stats line missing: %q", view)
	}
	if !strings.Contains(view, "No runs recorded yet.") {
		t.Error("empty message missing")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "runnerHighScore", 80, 24)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if updated.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quit")
	}
}
