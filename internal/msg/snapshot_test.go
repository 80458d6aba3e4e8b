package msg

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSink()
	if err := s.AddError(NewID("record-missing").WithParam("name", "users")); err != nil {
		t.Fatalf("AddError: %v", err)
	}
	s.Warning("low disk")
	s.Note("hello").WithHTML("<em>hello</em>")

	var buf bytes.Buffer
	if err := s.WriteSnapshot(&buf); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	restored, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if restored.Total() != 3 {
		t.Fatalf("restored Total() = %d, want 3", restored.Total())
	}
	e := restored.Items(Errors)[0]
	if e.ID != "record-missing" || e.Params["name"] != "users" {
		t.Errorf("error record lost fields: %s", e.Dump())
	}
	n := restored.Items(Notes)[0]
	if n.Text != "hello" || n.HTML != "<em>hello</em>" {
		t.Errorf("note record lost fields: %s", n.Dump())
	}
}

func TestReadSnapshotRejectsGarbage(t *testing.T) {
	if _, err := ReadSnapshot(strings.NewReader("not a snapshot")); err == nil {
		t.Fatal("ReadSnapshot accepted garbage input")
	}
}
