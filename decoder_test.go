package httphead_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead"
	"github.com/ghettovoice/httphead/header"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	dec := httphead.NewDecoder()

	fields := map[string][]string{
		"accept":          {"text/html, application/json;q=0.9"},
		"Accept-Encoding": {"gzip", "br;q=0.8"},
		"If-None-Match":   {`W/"xyzzy"`},
		"X-Custom":        {"some value"},
	}

	want := []header.Header{
		header.Accept{
			{MediaRange: header.MediaRange{Type: "text", Subtype: "html"}},
			{MediaRange: header.MediaRange{Type: "application", Subtype: "json"}, Weight: header.Q(0.9)},
		},
		header.AcceptEncoding{{Codings: "gzip"}},
		header.AcceptEncoding{{Codings: "br", Weight: header.Q(0.8)}},
		header.IfNoneMatch{Tags: header.EntityTags{header.NewWeakEntityTag("xyzzy")}},
		&header.Any{Name: "X-Custom", Value: "some value"},
	}

	got := dec.Decode(fields)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dec.Decode() mismatch (-want +got):\n%v", diff)
	}
}

func TestDecoder_Decode_SkipsMalformed(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	dec := httphead.NewDecoder(httphead.WithLogger(slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))))

	fields := map[string][]string{
		"Accept":   {"text"},
		"If-Match": {`"xyzzy"`},
	}

	want := []header.Header{
		header.IfMatch{Tags: header.EntityTags{header.NewEntityTag("xyzzy")}},
	}

	got := dec.Decode(fields)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dec.Decode() mismatch (-want +got):\n%v", diff)
	}
	if logged := sb.String(); !strings.Contains(logged, "skip malformed header field") {
		t.Errorf("expected a debug record about the skipped field, got %q", logged)
	}
}

func TestDecoder_DecodeStrict(t *testing.T) {
	t.Parallel()

	dec := httphead.NewDecoder()

	got, err := dec.DecodeStrict(map[string][]string{
		"Accept-Language": {"en-gb;q=0.8"},
	})
	if err != nil {
		t.Fatalf("dec.DecodeStrict() error = %v", err)
	}
	want := []header.Header{
		header.AcceptLanguage{{Language: "en-gb", Weight: header.Q(0.8)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dec.DecodeStrict() mismatch (-want +got):\n%v", diff)
	}

	if _, err := dec.DecodeStrict(map[string][]string{
		"Accept": {"text"},
	}); err == nil {
		t.Error("dec.DecodeStrict() error = nil, want error")
	}
}
