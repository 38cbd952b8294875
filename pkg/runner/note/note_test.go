package note

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
)

func run(t *testing.T, st *notes.Store, n Note) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	n.Notes = st
	n.Names = locale.New("en_US")
	n.Out = &buf
	err := n.Do(context.Background())
	return buf.String(), err
}

func TestSetGetRemove(t *testing.T) {
	st := notes.New(&notes.Memory{}, nil)

	out, err := run(t, st, Note{Action: Set, Date: "2024-03-15", Text: " Dentist ", JSON: true})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if strings.TrimSpace(out) != `{"date":"2024-03-15","note":"Dentist","hasNote":true}` {
		t.Fatalf("set output %q", out)
	}

	out, err = run(t, st, Note{Action: Get, Date: "2024-03-15"})
	if err != nil || !strings.Contains(out, "Dentist") || !strings.Contains(out, "Fri Mar 15 2024") {
		t.Fatalf("get output %q, %v", out, err)
	}

	out, err = run(t, st, Note{Action: Remove, Date: "2024-03-15", JSON: true})
	if err != nil {
		t.Fatalf("rm: %v", err)
	}
	if strings.TrimSpace(out) != `{"date":"2024-03-15","hasNote":false}` {
		t.Fatalf("rm output %q", out)
	}
	if st.Count() != 0 {
		t.Fatalf("count = %d", st.Count())
	}
}

func TestErrors(t *testing.T) {
	st := notes.New(&notes.Memory{}, nil)
	if _, err := run(t, st, Note{Action: Get, Date: "2024-02-30"}); err == nil {
		t.Fatalf("expected invalid date error")
	}
	if _, err := run(t, st, Note{Action: Set, Date: "2024-03-15", Text: "  "}); err == nil {
		t.Fatalf("expected empty text error")
	}
	if _, err := run(t, st, Note{Action: "bogus", Date: "2024-03-15"}); err == nil {
		t.Fatalf("expected unknown action error")
	}
}
