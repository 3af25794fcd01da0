package engine

import (
	"testing"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	eng := New(nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)

	if len(eng.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(eng.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	eng := New(nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	if len(eng.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(eng.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(nil)

	// Should not panic
	eng.notify(Event{Type: EventParseStart, QueryID: "test-query"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New(nil)
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	testEvent := Event{Type: EventParseStart, QueryID: "test-query", Data: "find currencies 1"}
	eng.notify(testEvent)

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}

	if observer1.Events[0].Type != EventParseStart {
		t.Errorf("Observer1: Expected EventParseStart, got %v", observer1.Events[0].Type)
	}
	if observer2.Events[0].Type != EventParseStart {
		t.Errorf("Observer2: Expected EventParseStart, got %v", observer2.Events[0].Type)
	}
}

func TestEventTimestamp(t *testing.T) {
	eng := New(nil)
	observer := &MockObserver{}
	eng.AddObserver(observer)

	eng.notify(Event{Type: EventParseStart, QueryID: "test-query"})

	if observer.Events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set, got zero value")
	}
}

func TestExecuteEmitsLifecycle(t *testing.T) {
	eng := New(newTestRegistry(t))
	observer := &MockObserver{}
	eng.AddObserver(observer)

	if _, err := eng.Execute("count currencies"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []EventType{EventParseStart, EventParseEnd, EventExecStart, EventExecEnd}
	if len(observer.Events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(observer.Events))
	}
	queryID := observer.Events[0].QueryID
	if queryID == "" {
		t.Error("Expected a query ID, got empty string")
	}
	for i, ev := range observer.Events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
		if ev.QueryID != queryID {
			t.Errorf("Event %d: expected query ID %s, got %s", i, queryID, ev.QueryID)
		}
	}

	if _, err := eng.Execute("count currencies"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if observer.Events[4].QueryID == queryID {
		t.Error("Expected a fresh query ID per command")
	}
}
