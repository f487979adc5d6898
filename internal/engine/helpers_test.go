package engine

import (
	"testing"

	"github.com/dshills/maskfield/internal/input/key"
)

const (
	phoneMask  = "(###) ###-####"
	phoneEmpty = "(   )    -    "
	ssnMask    = "###-##-####"
)

func newField(t *testing.T, source string, opts ...Option) *Field {
	t.Helper()
	f, err := New(source, opts...)
	if err != nil {
		t.Fatalf("New(%q) error = %v", source, err)
	}
	return f
}

func typeString(f *Field, s string) {
	for _, r := range s {
		f.HandleKey(key.NewRuneEvent(r, key.ModNone))
	}
}

func press(f *Field, k key.Key) KeyResult {
	return f.HandleKey(key.NewSpecialEvent(k, key.ModNone))
}

func hostSelection(f *Field) [2]int {
	s, e := f.Host().Selection()
	return [2]int{s, e}
}

// taskQueue holds deferred tasks until run is called.
type taskQueue struct {
	tasks []func()
}

func (q *taskQueue) Defer(task func()) {
	q.tasks = append(q.tasks, task)
}

func (q *taskQueue) run() {
	tasks := q.tasks
	q.tasks = nil
	for _, task := range tasks {
		task()
	}
}

type eventLog struct {
	events []Event
}

func (l *eventLog) Observe(e Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, len(l.events))
	for i, e := range l.events {
		out[i] = e.Kind
	}
	return out
}
