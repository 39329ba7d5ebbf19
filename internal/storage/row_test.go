package storage

import "testing"

func TestRowGetSet(t *testing.T) {
	var r Row
	for i, col := range Columns {
		if !r.Set(col, col+"-value") {
			t.Fatalf("column %d %q not accepted", i, col)
		}
	}
	for _, col := range Columns {
		if got := r.Get(col); got != col+"-value" {
			t.Errorf("Get(%q) = %q", col, got)
		}
	}
	if r.Set("unknown", "x") {
		t.Error("unknown column accepted")
	}
	if got := r.Get("unknown"); got != "" {
		t.Errorf("Get(unknown) = %q", got)
	}
}
