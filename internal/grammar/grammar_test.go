package grammar_test

import (
	"testing"

	"github.com/ghettovoice/httphead/internal/grammar"
)

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"simple", "gzip", true},
		{"specials", "x-custom.v2+json", true},
		{"wildcard", "*", true},
		{"space", "a b", false},
		{"comma", "a,b", false},
		{"slash", "text/plain", false},
		{"quoted", `"abc"`, false},
		{"equals", "a=b", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsToken(c.in); got != c.want {
				t.Errorf("IsToken(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIsQuoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"empty quoted", `""`, true},
		{"simple", `"abc"`, true},
		{"with spaces", `"a b\tc"`, true},
		{"escaped quote", `"a\"b"`, true},
		{"escaped backslash", `"a\\b"`, true},
		{"unterminated", `"abc`, false},
		{"bare", "abc", false},
		{"inner quote", `"a"b"`, false},
		{"trailing escape", `"abc\"`, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsQuoted(c.in); got != c.want {
				t.Errorf("IsQuoted(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"http", "http", true},
		{"https", "https", true},
		{"custom", "coap+tcp", true},
		{"leading digit", "1http", false},
		{"underscore", "my_scheme", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.in); got != c.want {
				t.Errorf("IsScheme(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIsLanguageRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"wildcard", "*", true},
		{"primary", "en", true},
		{"region", "en-GB", true},
		{"numeric subtag", "es-419", true},
		{"too long subtag", "verylongtag", false},
		{"trailing dash", "en-", false},
		{"double dash", "en--gb", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsLanguageRange(c.in); got != c.want {
				t.Errorf("IsLanguageRange(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIsOpaqueTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"simple", "xyzzy", true},
		{"space", "a b", false},
		{"quote", `a"b`, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsOpaqueTag(c.in); got != c.want {
				t.Errorf("IsOpaqueTag(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"simple", "abc", `"abc"`},
		{"with space", "a b", `"a b"`},
		{"with quote", `a"b`, `"a\"b"`},
		{"with backslash", `a\b`, `"a\\b"`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.Quote(c.in); got != c.want {
				t.Errorf("Quote(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"empty quoted", `""`, ""},
		{"simple", `"abc"`, "abc"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"not quoted", "abc", "abc"},
		{"unterminated", `"abc`, `"abc`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.Unquote(c.in); got != c.want {
				t.Errorf("Unquote(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func BenchmarkParseAccept(b *testing.B) {
	in := "text/html, application/xhtml+xml, application/xml;q=0.9, */*;q=0.8"
	for b.Loop() {
		if _, err := grammar.ParseAccept(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseIfMatch(b *testing.B) {
	in := `"xyzzy", W/"r2d2", "c3po"`
	for b.Loop() {
		if _, err := grammar.ParseIfMatch(in); err != nil {
			b.Fatal(err)
		}
	}
}
