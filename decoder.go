package httphead

import (
	"log/slog"
	"maps"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/header"
	"github.com/ghettovoice/httphead/internal/log"
)

// Decoder converts raw header fields into typed [header.Header] values.
// The zero value is not usable, use [NewDecoder].
type Decoder struct {
	log *slog.Logger
}

// DecoderOption configures a [Decoder].
type DecoderOption func(*Decoder)

// WithLogger sets the logger used by the decoder.
// By default the decoder does not log.
func WithLogger(l *slog.Logger) DecoderOption {
	return func(dec *Decoder) {
		if l != nil {
			dec.log = l
		}
	}
}

// WithDefaultLogger sets the library console logger.
func WithDefaultLogger() DecoderOption {
	return func(dec *Decoder) { dec.log = log.Def }
}

// WithDevLogger sets the library development logger with colored
// human-readable output.
func WithDevLogger() DecoderOption {
	return func(dec *Decoder) { dec.log = log.Dev }
}

// NewDecoder creates a new Decoder with the given options.
func NewDecoder(opts ...DecoderOption) *Decoder {
	dec := &Decoder{log: log.Noop}
	for _, opt := range opts {
		opt(dec)
	}
	return dec
}

// Decode parses all values of the given header fields map and returns the
// typed headers ordered by the canonical field name. Malformed field values
// are skipped and logged at the debug level.
func (dec *Decoder) Decode(fields map[string][]string) []header.Header {
	dec.log.Debug("decode header fields", "fields", log.FmtValue(fields, false))

	names := slices.Sorted(maps.Keys(fields))

	var hdrs []header.Header //nolint:prealloc
	for _, name := range names {
		for _, val := range fields[name] {
			hdr, err := header.Parse(name, val)
			if err != nil {
				dec.log.Debug("skip malformed header field",
					"name", name,
					"value", log.StringValue(val),
					"error", err,
				)
				continue
			}
			hdrs = append(hdrs, hdr)
		}
	}
	return hdrs
}

// DecodeStrict parses all values of the given header fields map and returns
// the typed headers ordered by the canonical field name.
// Unlike [Decoder.Decode] it stops at the first malformed field value.
func (dec *Decoder) DecodeStrict(fields map[string][]string) ([]header.Header, error) {
	names := slices.Sorted(maps.Keys(fields))

	var hdrs []header.Header //nolint:prealloc
	for _, name := range names {
		for _, val := range fields[name] {
			hdr, err := header.Parse(name, val)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			hdrs = append(hdrs, hdr)
		}
	}
	return hdrs, nil
}
