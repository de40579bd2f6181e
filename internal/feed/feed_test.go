package feed

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnStartEvent("p1", "Alice"))
	l.Log(NewDrawEvent("p1", "Alice", 5))
	l.Log(NewTurnEndEvent("p1", "Alice"))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d, want %d", i, e.Seq, i+1)
		}
	}
	if last := l.LastEvent(); last.Type != EventTurnEnd {
		t.Errorf("last event = %s, want TurnEnd", last.Type)
	}
	if draws := l.EventsOfType(EventDraw); len(draws) != 1 {
		t.Errorf("got %d draw events, want 1", len(draws))
	}
}

func TestTextLoggerWritesReadableLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewCardBoughtEvent("p1", "Alice", "queen_ant", "Queen Ant", 7))

	out := sb.String()
	if !strings.Contains(out, "Alice buys Queen Ant for 7 resources") {
		t.Errorf("output %q missing the buy line", out)
	}
	if !strings.Contains(out, "CardBought") {
		t.Errorf("output %q missing the event type", out)
	}
}

func TestFormatAllJoinsLines(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewGameStartEvent("g1", 2))
	l.Log(NewTierAdvanceEvent(2))

	out := FormatAll(l.Events())
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected one line per event, got %q", out)
	}
}
