package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestParseIfMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    header.IfMatch
		wantErr bool
	}{
		{"empty", "", header.IfMatch{}, false},
		{"any", "*", header.IfMatch{Any: true}, false},
		{"any padded", " * ", header.IfMatch{Any: true}, false},
		{"single", `"xyzzy"`, header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}}, false},
		{
			"multiple",
			`"xyzzy", W/"r2d2", "c3po"`,
			header.IfMatch{Tags: header.EntityTags{
				header.NewEntityTag("xyzzy"),
				header.NewWeakEntityTag("r2d2"),
				header.NewEntityTag("c3po"),
			}},
			false,
		},
		{
			"empty elems",
			`,"xyzzy",, "c3po",`,
			header.IfMatch{Tags: header.EntityTags{
				header.NewEntityTag("xyzzy"),
				header.NewEntityTag("c3po"),
			}},
			false,
		},
		{"star in list", `"xyzzy", *`, header.IfMatch{}, true},
		{"unquoted", "xyzzy", header.IfMatch{}, true},
		{"only separators", ", ,", header.IfMatch{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseIfMatch(c.in)
			if c.wantErr != (err != nil) {
				t.Fatalf("ParseIfMatch(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseIfMatch(%q) mismatch (-want +got):\n%v", c.in, diff)
			}
		})
	}
}

func TestIfMatch_Match(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.IfMatch
		tag  header.EntityTag
		want bool
	}{
		{"any", header.IfMatch{Any: true}, header.NewEntityTag("xyzzy"), true},
		{"any weak", header.IfMatch{Any: true}, header.NewWeakEntityTag("xyzzy"), true},
		{
			"strong match",
			header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}},
			header.NewEntityTag("xyzzy"),
			true,
		},
		{
			"weak tag never matches",
			header.IfMatch{Tags: header.EntityTags{header.NewWeakEntityTag("xyzzy")}},
			header.NewEntityTag("xyzzy"),
			false,
		},
		{
			"weak current never matches",
			header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}},
			header.NewWeakEntityTag("xyzzy"),
			false,
		},
		{
			"no match",
			header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}},
			header.NewEntityTag("other"),
			false,
		},
		{"zero", header.IfMatch{}, header.NewEntityTag("xyzzy"), false},
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

func TestIfMatch_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.IfMatch
		want string
	}{
		{"zero", header.IfMatch{}, "If-Match: "},
		{"any", header.IfMatch{Any: true}, "If-Match: *"},
		{
			"tags",
			header.IfMatch{Tags: header.EntityTags{
				header.NewEntityTag("xyzzy"),
				header.NewWeakEntityTag("r2d2"),
			}},
			`If-Match: "xyzzy", W/"r2d2"`,
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

func TestIfMatch_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.IfMatch
		want bool
	}{
		{"zero", header.IfMatch{}, false},
		{"any", header.IfMatch{Any: true}, true},
		{"any with tags", header.IfMatch{Any: true, Tags: header.EntityTags{{}}}, false},
		{"tags", header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}}, true},
		{"bad tag", header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("a b")}}, false},
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
