package header

import (
	"errors"
	"fmt"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/util"
)

// MediaRangeKind classifies a media range by its wildcard level.
type MediaRangeKind int

const (
	// MediaRangeClosed matches a single media type, like "text/html".
	MediaRangeClosed MediaRangeKind = iota
	// MediaRangePartial matches all subtypes of a type, like "text/*".
	MediaRangePartial
	// MediaRangeOpen matches any media type, "*/*".
	MediaRangeOpen
)

func (k MediaRangeKind) String() string {
	switch k {
	case MediaRangeClosed:
		return "closed"
	case MediaRangePartial:
		return "partial"
	case MediaRangeOpen:
		return "open"
	default:
		return "unknown"
	}
}

// MediaRange represents a media range from RFC 7231 Section 5.3.2:
// a type/subtype pair, either of which may be the "*" wildcard,
// with optional media type parameters.
type MediaRange struct {
	Type    string
	Subtype string
	Params  Values
}

// NewMediaRange creates a MediaRange from a type and subtype.
func NewMediaRange(typ, subtype string) MediaRange {
	return MediaRange{Type: typ, Subtype: subtype}
}

// ParseMediaRange parses a media range from the given input s (string or []byte).
func ParseMediaRange[T ~string | ~[]byte](s T) (MediaRange, error) {
	node, err := grammar.ParseMediaRange(s)
	if err != nil {
		return MediaRange{}, errtrace.Wrap(err)
	}
	return buildFromMediaRangeFullNode(node), nil
}

// Kind reports the wildcard level of the range.
// "*" on both sides is open, "*" on the subtype side only is partial,
// anything else is closed. The classification is done on the values,
// so "*/html" counts as closed.
func (rng MediaRange) Kind() MediaRangeKind {
	switch {
	case rng.Type == "*" && rng.Subtype == "*":
		return MediaRangeOpen
	case rng.Subtype == "*":
		return MediaRangePartial
	default:
		return MediaRangeClosed
	}
}

// Includes reports whether the range covers the given concrete type/subtype pair.
// Type and subtype names are compared case-insensitively, parameters are ignored.
func (rng MediaRange) Includes(typ, subtype string) bool {
	switch rng.Kind() {
	case MediaRangeOpen:
		return true
	case MediaRangePartial:
		return util.EqFold(rng.Type, typ)
	default:
		return util.EqFold(rng.Type, typ) && util.EqFold(rng.Subtype, subtype)
	}
}

func (rng MediaRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(util.LCase(rng.Type))
	sb.WriteByte('/')
	sb.WriteString(util.LCase(rng.Subtype))
	renderHdrParams(sb, rng.Params) //nolint:errcheck
	return sb.String()
}

func (rng MediaRange) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, rng.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rng.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, rng.String())
			return
		}

		type hideMethods MediaRange
		type MediaRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaRange(rng))
		return
	}
}

func (rng MediaRange) Equal(val any) bool {
	var other MediaRange
	switch v := val.(type) {
	case MediaRange:
		other = v
	case *MediaRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(rng.Type, other.Type) &&
		util.EqFold(rng.Subtype, other.Subtype) &&
		compareHdrParams(rng.Params, other.Params, nil)
}

func (rng MediaRange) IsValid() bool {
	return grammar.IsToken(rng.Type) &&
		grammar.IsToken(rng.Subtype) &&
		!(rng.Type == "*" && rng.Subtype != "*") &&
		validateHdrParams(rng.Params)
}

func (rng MediaRange) IsZero() bool {
	return rng.Type == "" && rng.Subtype == "" && len(rng.Params) == 0
}

func (rng MediaRange) Clone() MediaRange {
	rng.Params = rng.Params.Clone()
	return rng
}

func (rng MediaRange) MarshalText() ([]byte, error) {
	return []byte(rng.String()), nil
}

func (rng *MediaRange) UnmarshalText(data []byte) error {
	node, err := grammar.ParseMediaRange(data)
	if err != nil {
		*rng = MediaRange{}
		if errors.Is(err, grammar.ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	*rng = buildFromMediaRangeFullNode(node)
	return nil
}

func buildFromMediaRangeNode(node *abnf.Node) MediaRange {
	return MediaRange{
		Type:    node.Children[0].String(),
		Subtype: node.Children[2].String(),
	}
}

func buildFromMediaRangeFullNode(node *abnf.Node) MediaRange {
	rng := buildFromMediaRangeNode(grammar.MustGetNode(node, "media-range"))
	for _, pn := range node.GetNodes("parameter") {
		kv := buildFromParameterNode(pn)
		if rng.Params == nil {
			rng.Params = make(Values)
		}
		rng.Params.Append(kv[0], kv[1])
	}
	return rng
}

func buildFromParameterNode(node *abnf.Node) [2]string {
	var kv [2]string
	kv[0] = node.Children[0].String()
	kv[1] = node.Children[2].String()
	if grammar.IsQuoted(kv[1]) {
		kv[1] = grammar.Unquote(kv[1])
	}
	return kv
}
