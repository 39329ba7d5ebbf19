package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Sachin Tendulkar", want: "sachin tendulkar"},
		{name: "spaces", in: "  Sachin   Tendulkar ", want: "sachin tendulkar"},
		{name: "accents", in: "Sébastien Müller", want: "sebastien muller"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if !Contains("Virat Kohli", "KOHLI") {
		t.Error("expected case-insensitive match")
	}
	if !Contains("José Pérez", "jose") {
		t.Error("expected accent-insensitive match")
	}
	if Contains("Virat Kohli", "Sharma") {
		t.Error("unexpected match")
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "fullname", want: "fullname"},
		{in: " Country Name ", want: "country_name"},
		{in: "\ufeffid", want: "id"},
	}
	for _, tt := range tests {
		if got := Header(tt.in); got != tt.want {
			t.Errorf("Header(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
