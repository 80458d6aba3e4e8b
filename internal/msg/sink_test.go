package msg

import (
	"errors"
	"sync"
	"testing"
)

func TestSinkAppendOrderAndClear(t *testing.T) {
	s := NewSink()
	if s.Any(Errors) {
		t.Fatal("fresh sink should have no errors")
	}

	if err := s.Error("first"); err != nil {
		t.Fatalf("Error() = %v", err)
	}
	if err := s.Error("second"); err != nil {
		t.Fatalf("Error() = %v", err)
	}
	s.Warning("careful")

	items := s.Items(Errors)
	if len(items) != 2 {
		t.Fatalf("len(errors) = %d, want 2", len(items))
	}
	if items[0].Text != "first" || items[1].Text != "second" {
		t.Errorf("append order broken: %q, %q", items[0].Text, items[1].Text)
	}
	if got := s.Len(Warnings); got != 1 {
		t.Errorf("len(warnings) = %d, want 1", got)
	}

	s.Clear(Errors)
	if s.Any(Errors) {
		t.Error("errors should be empty after Clear")
	}
	if !s.Any(Warnings) {
		t.Error("Clear(errors) must not touch warnings")
	}

	s.Reset()
	if s.Total() != 0 {
		t.Errorf("Total() = %d after Reset, want 0", s.Total())
	}
}

func TestSinkUnknownChannel(t *testing.T) {
	s := NewSink()
	err := s.Add(Channel("bogus"), New("x"))
	if !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("Add(bogus) = %v, want ErrUnknownChannel", err)
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"errors", Errors, false},
		{"Warnings", Warnings, false},
		{" notes ", Notes, false},
		{"fatal", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownChannel) {
				t.Errorf("ParseChannel(%q) err = %v, want ErrUnknownChannel", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseChannel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestSinkOnErrorHook(t *testing.T) {
	s := NewSink()
	hookErr := errors.New("stop")
	calls := 0
	s.SetOnError(func(s *Sink) error {
		calls++
		// The hook runs without the sink lock, so it may read freely.
		if got := s.Len(Errors); got != calls {
			t.Errorf("hook saw %d errors, want %d", got, calls)
		}
		return hookErr
	})

	if err := s.Error("boom"); !errors.Is(err, hookErr) {
		t.Fatalf("Error() = %v, want hook error", err)
	}
	s.Warning("no hook for warnings")
	s.Note("or notes")
	if calls != 1 {
		t.Fatalf("hook ran %d times, want 1", calls)
	}

	s.SetOnError(nil)
	if err := s.Error("quiet again"); err != nil {
		t.Fatalf("Error() after hook removal = %v", err)
	}
}

func TestSinkConcurrentAppends(t *testing.T) {
	s := NewSink()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Note("n")
		}()
	}
	wg.Wait()
	if got := s.Len(Notes); got != 50 {
		t.Fatalf("len(notes) = %d, want 50", got)
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	s := NewSink()
	s.Note("a")
	snap := s.Items(Notes)
	s.Note("b")
	if len(snap) != 1 {
		t.Fatalf("snapshot grew with later appends: len = %d", len(snap))
	}
}

func TestMessageBuilders(t *testing.T) {
	m := NewID("greeting").WithParam("name", "World").WithHTML("<b>hi</b>")
	if m.ID != "greeting" || m.HTML != "<b>hi</b>" {
		t.Fatalf("builder fields wrong: %s", m.Dump())
	}
	if m.Params["name"] != "World" {
		t.Errorf("param not set: %v", m.Params)
	}
	if !m.Renderable() {
		t.Error("record with id should be renderable")
	}
	if (&Message{}).Renderable() {
		t.Error("empty record must not be renderable")
	}
}

func TestDumpIsStable(t *testing.T) {
	m := New("x").WithParam("b", 2).WithParam("a", 1)
	want := `text="x" html="" id="" params={a=1 b=2}`
	if got := m.Dump(); got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}
