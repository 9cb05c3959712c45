package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestParseAcceptCharset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.AcceptCharset
		wantErr bool
	}{
		{"empty", "", nil, true},
		{"single", "utf-8", header.AcceptCharset{{Charset: "utf-8"}}, false},
		{
			"multiple with weights",
			"utf-8, iso-8859-1;q=0.5",
			header.AcceptCharset{
				{Charset: "utf-8"},
				{Charset: "iso-8859-1", Weight: header.Q(0.5)},
			},
			false,
		},
		{
			"wildcard",
			"utf-8;q=0.9, *;q=0.1",
			header.AcceptCharset{
				{Charset: "utf-8", Weight: header.Q(0.9)},
				{Charset: header.CharsetAny, Weight: header.Q(0.1)},
			},
			false,
		},
		{
			"leading commas",
			",, utf-8",
			header.AcceptCharset{{Charset: "utf-8"}},
			false,
		},
		{"only separators", " , ,", nil, true},
		{"bad weight", "utf-8;q=2", nil, true},
		{"generic param", "utf-8;a=1", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseAcceptCharset(c.in)
			if c.wantErr != (err != nil) {
				t.Fatalf("ParseAcceptCharset(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseAcceptCharset(%q) mismatch (-want +got):\n%v", c.in, diff)
			}
		})
	}
}

func TestAcceptCharset_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.AcceptCharset
		want string
	}{
		{"nil", header.AcceptCharset(nil), ""},
		{"empty", header.AcceptCharset{}, "Accept-Charset: "},
		{
			"full",
			header.AcceptCharset{
				{Charset: "UTF-8"},
				{Charset: "iso-8859-1", Weight: header.Q(0.5)},
			},
			"Accept-Charset: utf-8, iso-8859-1;q=0.5",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(nil); got != c.want {
				t.Errorf("hdr.Render(nil) = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAcceptCharset_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.AcceptCharset
		val  any
		want bool
	}{
		{"nil to nil", header.AcceptCharset(nil), nil, false},
		{"zero to nil hdr", header.AcceptCharset{}, header.AcceptCharset(nil), true},
		{
			"case insensitive",
			header.AcceptCharset{{Charset: "UTF-8"}},
			header.AcceptCharset{{Charset: "utf-8"}},
			true,
		},
		{
			"default weight matches explicit one",
			header.AcceptCharset{{Charset: "utf-8"}},
			header.AcceptCharset{{Charset: "utf-8", Weight: header.Q(1)}},
			true,
		},
		{
			"different weights",
			header.AcceptCharset{{Charset: "utf-8", Weight: header.Q(0.5)}},
			header.AcceptCharset{{Charset: "utf-8"}},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestAcceptCharset_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.AcceptCharset
		want bool
	}{
		{"nil", header.AcceptCharset(nil), false},
		{"empty", header.AcceptCharset{}, false},
		{"valid", header.AcceptCharset{{Charset: "utf-8"}}, true},
		{"empty elem", header.AcceptCharset{{}}, false},
		{"bad weight", header.AcceptCharset{{Charset: "utf-8", Weight: header.Q(-1)}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.IsValid(); got != c.want {
				t.Errorf("hdr.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
