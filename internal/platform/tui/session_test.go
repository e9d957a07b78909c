package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestMenuOrder(t *testing.T) {
	items := menuItems(nil)
	var ids []string
	for _, it := range items {
		ids = append(ids, it.GameID)
	}
	want := []string{"bevel_easy", "bevel", "bevel_hard"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}

	m := NewMenuModel(nil, testConfig())
	if m.items[m.cursor].GameID != "bevel" {
		t.Errorf("Cursor starts on %s", m.items[m.cursor].GameID)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), "tester", quietLogger())

	m = sessionStep(t, m, keyMsg("down"))
	m = sessionStep(t, m, keyMsg("enter"))
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	game := m.game.game.(*fakeGame)
	if game.id != "bevel_hard" {
		t.Errorf("Selected %s, want bevel_hard", game.id)
	}

	m = sessionStep(t, m, keyMsg("p"))
	m = sessionStep(t, m, TickMsg{})
	m = sessionStep(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun("bevel", "0f2b9c1e-aaaa-bbbb-cccc-000000000000", 75); err != nil {
		t.Fatal(err)
	}

	m := NewSessionModel(store, testConfig(), "tester", quietLogger())
	m = sessionStep(t, m, keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if m.View() == "" {
		t.Error("Scoreboard view is empty")
	}

	m = sessionStep(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
	if m.quitting {
		t.Error("Back from scores must not quit the session")
	}
}

func TestShortRunID(t *testing.T) {
	tests := map[string]string{
		"":                                     "-",
		"0f2b9c1e-aaaa-bbbb-cccc-000000000000": "0f2b9c1e",
		"plain":                                "plain",
	}
	for in, want := range tests {
		if got := shortRunID(in); got != want {
			t.Errorf("shortRunID(%q) = %q, want %q", in, got, want)
		}
	}
}
