package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestParseMediaRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.MediaRange
		wantErr bool
	}{
		{"empty", "", header.MediaRange{}, true},
		{"any", "*/*", header.NewMediaRange("*", "*"), false},
		{"partial", "text/*", header.NewMediaRange("text", "*"), false},
		{"closed", "text/html", header.NewMediaRange("text", "html"), false},
		{
			"with params",
			"text/plain;format=flowed;charset=utf-8",
			header.MediaRange{
				Type:    "text",
				Subtype: "plain",
				Params:  make(header.Values).Set("format", "flowed").Set("charset", "utf-8"),
			},
			false,
		},
		{"no subtype", "text", header.MediaRange{}, true},
		{"extra slash", "text/html/x", header.MediaRange{}, true},
		{"weight param", "text/html;q=0.9", header.MediaRange{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseMediaRange(c.in)
			if c.wantErr != (err != nil) {
				t.Fatalf("ParseMediaRange(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseMediaRange(%q) mismatch (-want +got):\n%v", c.in, diff)
			}
		})
	}
}

func TestMediaRange_Kind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rng  header.MediaRange
		want header.MediaRangeKind
	}{
		{"open", header.NewMediaRange("*", "*"), header.MediaRangeOpen},
		{"partial", header.NewMediaRange("text", "*"), header.MediaRangePartial},
		{"closed", header.NewMediaRange("text", "html"), header.MediaRangeClosed},
		{"star subtype name", header.NewMediaRange("*", "html"), header.MediaRangeClosed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rng.Kind(); got != c.want {
				t.Errorf("rng.Kind() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestMediaRange_Includes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		rng          header.MediaRange
		typ, subtype string
		want         bool
	}{
		{"open", header.NewMediaRange("*", "*"), "image", "png", true},
		{"partial match", header.NewMediaRange("text", "*"), "text", "csv", true},
		{"partial no match", header.NewMediaRange("text", "*"), "image", "png", false},
		{"closed match fold", header.NewMediaRange("Text", "HTML"), "text", "html", true},
		{"closed no match", header.NewMediaRange("text", "html"), "text", "csv", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rng.Includes(c.typ, c.subtype); got != c.want {
				t.Errorf("rng.Includes(%q, %q) = %v, want %v", c.typ, c.subtype, got, c.want)
			}
		})
	}
}

func TestMediaRange_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rng  header.MediaRange
		want string
	}{
		{"zero", header.MediaRange{}, "/"},
		{"plain", header.NewMediaRange("Text", "HTML"), "text/html"},
		{
			"with params",
			header.MediaRange{
				Type:    "text",
				Subtype: "plain",
				Params:  make(header.Values).Set("format", "flowed").Set("charset", "utf-8"),
			},
			"text/plain;charset=utf-8;format=flowed",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rng.String(); got != c.want {
				t.Errorf("rng.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestMediaRange_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rng  header.MediaRange
		want bool
	}{
		{"zero", header.MediaRange{}, false},
		{"closed", header.NewMediaRange("text", "html"), true},
		{"open", header.NewMediaRange("*", "*"), true},
		{"star type only", header.NewMediaRange("*", "html"), false},
		{"bad type", header.NewMediaRange("te xt", "html"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rng.IsValid(); got != c.want {
				t.Errorf("rng.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
