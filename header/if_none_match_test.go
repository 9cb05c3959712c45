package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestParseIfNoneMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.IfNoneMatch
		wantErr bool
	}{
		{"empty", "", header.IfNoneMatch{}, false},
		{"any", "*", header.IfNoneMatch{Any: true}, false},
		{
			"weak tags",
			`W/"xyzzy", W/"r2d2"`,
			header.IfNoneMatch{Tags: header.EntityTags{
				header.NewWeakEntityTag("xyzzy"),
				header.NewWeakEntityTag("r2d2"),
			}},
			false,
		},
		{"unquoted", "xyzzy", header.IfNoneMatch{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseIfNoneMatch(c.in)
			if c.wantErr != (err != nil) {
				t.Fatalf("ParseIfNoneMatch(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseIfNoneMatch(%q) mismatch (-want +got):\n%v", c.in, diff)
			}
		})
	}
}

func TestIfNoneMatch_Match(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.IfNoneMatch
		tag  header.EntityTag
		want bool
	}{
		{"any", header.IfNoneMatch{Any: true}, header.NewEntityTag("xyzzy"), true},
		{
			"weak tag matches strong current",
			header.IfNoneMatch{Tags: header.EntityTags{header.NewWeakEntityTag("xyzzy")}},
			header.NewEntityTag("xyzzy"),
			true,
		},
		{
			"strong tag matches weak current",
			header.IfNoneMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}},
			header.NewWeakEntityTag("xyzzy"),
			true,
		},
		{
			"no match",
			header.IfNoneMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}},
			header.NewEntityTag("other"),
			false,
		},
		{"zero", header.IfNoneMatch{}, header.NewEntityTag("xyzzy"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Match(c.tag); got != c.want {
				t.Errorf("hdr.Match(%v) = %v, want %v", c.tag, got, c.want)
			}
		})
	}
}

func TestIfNoneMatch_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.IfNoneMatch
		want string
	}{
		{"zero", header.IfNoneMatch{}, "If-None-Match: "},
		{"any", header.IfNoneMatch{Any: true}, "If-None-Match: *"},
		{
			"tags",
			header.IfNoneMatch{Tags: header.EntityTags{header.NewWeakEntityTag("xyzzy")}},
			`If-None-Match: W/"xyzzy"`,
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
