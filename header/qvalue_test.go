package header_test

import (
	"testing"

	"github.com/ghettovoice/httphead/header"
)

func TestParseQValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.QValue
		wantErr bool
	}{
		{"empty", "", 0, true},
		{"zero", "0", 0, false},
		{"zero dot", "0.", 0, false},
		{"fraction", "0.5", 0.5, false},
		{"three digits", "0.125", 0.125, false},
		{"one", "1", 1, false},
		{"one with zeros", "1.000", 1, false},
		{"above one", "1.5", 0, true},
		{"too precise", "0.1234", 0, true},
		{"negative", "-0.5", 0, true},
		{"not a number", "abc", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseQValue(c.in)
			if c.wantErr != (err != nil) {
				t.Fatalf("ParseQValue(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("ParseQValue(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestQValue_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    header.QValue
		want string
	}{
		{"zero", 0, "0"},
		{"half", 0.5, "0.5"},
		{"three digits", 0.125, "0.125"},
		{"one", 1, "1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.q.String(); got != c.want {
				t.Errorf("QValue(%v).String() = %q, want %q", float64(c.q), got, c.want)
			}
		})
	}
}

func TestQValue_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    header.QValue
		want bool
	}{
		{"zero", 0, true},
		{"half", 0.5, true},
		{"one", 1, true},
		{"negative", -0.1, false},
		{"above one", 1.1, false},
		{"too precise", 0.1234, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.q.IsValid(); got != c.want {
				t.Errorf("QValue(%v).IsValid() = %v, want %v", float64(c.q), got, c.want)
			}
		})
	}
}
