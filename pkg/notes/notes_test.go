package notes

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"tableflip.dev/flipcal/pkg/calendar"
)

func TestSetGetTrims(t *testing.T) {
	mem := &Memory{}
	s := New(mem, zaptest.NewLogger(t))

	if err := s.Set("2024-03-15", "  Dentist \n"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := s.Get("2024-03-15")
	if !ok || got != "Dentist" {
		t.Fatalf("get = %q, %v", got, ok)
	}
	if s.Count() != 1 {
		t.Fatalf("count = %d", s.Count())
	}

	var persisted map[string]string
	if err := json.Unmarshal(mem.Data, &persisted); err != nil {
		t.Fatalf("persisted data: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"2024-03-15": "Dentist"}, persisted); diff != "" {
		t.Fatalf("persisted mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBlankDeletes(t *testing.T) {
	mem := &Memory{}
	s := New(mem, nil)
	if err := s.Set("2024-03-15", "Dentist"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("2024-03-15", "   "); err != nil {
		t.Fatalf("set blank: %v", err)
	}
	if s.Has("2024-03-15") {
		t.Fatalf("blank set must delete")
	}
	if s.Count() != 0 {
		t.Fatalf("count = %d", s.Count())
	}
	if string(mem.Data) != "{}" {
		t.Fatalf("expected empty persisted map, got %s", mem.Data)
	}
}

func TestCountOnlyNonEmpty(t *testing.T) {
	mem := &Memory{Data: []byte(`{"2024-01-01":"New year","2024-01-02":"  ","2024-01-03":""}`)}
	s := New(mem, nil)
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1", s.Count())
	}
	if err := s.Set("2024-01-04", "x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}
}

func TestCorruptDataStartsEmpty(t *testing.T) {
	s := New(&Memory{Data: []byte("{not json")}, zaptest.NewLogger(t))
	if s.Count() != 0 {
		t.Fatalf("corrupt data should load as empty")
	}

	s = New(&Memory{Err: errors.New("disk gone")}, nil)
	if s.Count() != 0 {
		t.Fatalf("load failure should load as empty")
	}
}

func TestClearAll(t *testing.T) {
	mem := &Memory{}
	s := New(mem, nil)
	_ = s.Set("2024-01-01", "a")
	_ = s.Set("2024-01-02", "b")
	if err := s.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Count() != 0 || mem.Data != nil {
		t.Fatalf("expected cleared store, count=%d data=%q", s.Count(), mem.Data)
	}
}

func TestSaveFailureRollsBack(t *testing.T) {
	mem := &Memory{}
	s := New(mem, nil)
	if err := s.Set("2024-01-01", "keep"); err != nil {
		t.Fatalf("set: %v", err)
	}
	mem.Err = errors.New("read-only")
	if err := s.Set("2024-01-01", "lost"); err == nil {
		t.Fatalf("expected save error")
	}
	if err := s.Set("2024-01-02", "lost"); err == nil {
		t.Fatalf("expected save error")
	}
	if err := s.Delete("2024-01-01"); err == nil {
		t.Fatalf("expected save error")
	}
	if got, _ := s.Get("2024-01-01"); got != "keep" {
		t.Fatalf("rollback failed, got %q", got)
	}
	if s.Has("2024-01-02") {
		t.Fatalf("failed insert should not stick")
	}
}

func TestSetRejectsBadKey(t *testing.T) {
	mem := &Memory{}
	s := New(mem, nil)
	for _, key := range []string{"tomorrow", "2024-03-1x", "2024-3-155", "+024-03-15", "2024-03- 5"} {
		if err := s.Set(key, "x"); !errors.Is(err, calendar.ErrInvalidKey) {
			t.Fatalf("Set(%q) error = %v, want ErrInvalidKey", key, err)
		}
		if err := s.Delete(key); !errors.Is(err, calendar.ErrInvalidKey) {
			t.Fatalf("Delete(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
	if s.Count() != 0 || mem.Writes != 0 {
		t.Fatalf("bad keys should not be stored, count=%d writes=%d", s.Count(), mem.Writes)
	}
}

func TestLoadSkipsBadKeys(t *testing.T) {
	mem := &Memory{Data: []byte(`{"2024-03-15":"Dentist","2024-3-155":"stray","2024-03-1x":"stray"}`)}
	s := New(mem, zaptest.NewLogger(t))
	want := []Note{{Key: "2024-03-15", Text: "Dentist"}}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Fatalf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestAllSorted(t *testing.T) {
	s := New(&Memory{}, nil)
	_ = s.Set("2024-05-01", "b")
	_ = s.Set("2023-12-31", "a")
	want := []Note{{Key: "2023-12-31", Text: "a"}, {Key: "2024-05-01", Text: "b"}}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Fatalf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestReload(t *testing.T) {
	mem := &Memory{}
	s := New(mem, nil)
	mem.Data = []byte(`{"2024-02-02":"external"}`)
	if !s.Reload() {
		t.Fatalf("reload should report the outside change")
	}
	if got, _ := s.Get("2024-02-02"); got != "external" {
		t.Fatalf("reload did not pick up data: %q", got)
	}
}

func TestReloadOwnWriteIsUnchanged(t *testing.T) {
	mem := &Memory{}
	s := New(mem, nil)
	if err := s.Set("2024-02-02", "mine"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if s.Reload() {
		t.Fatalf("reading back our own write should not count as a change")
	}
	if got, _ := s.Get("2024-02-02"); got != "mine" {
		t.Fatalf("note lost on reload: %q", got)
	}
}
