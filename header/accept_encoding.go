package header

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

const (
	// CodingsAny is the content coding wildcard matching any coding.
	CodingsAny Codings = "*"
	// CodingsIdentity is the reserved "no transformation" coding.
	CodingsIdentity Codings = "identity"
)

// Codings represents a content coding name from RFC 7231 Section 3.1.2.1,
// or one of the reserved Accept-Encoding values "identity" and "*".
// Coding names are case-insensitive.
type Codings string

func (c Codings) IsValid() bool { return grammar.IsToken(c) }

// IsAny reports whether the codings is the "*" wildcard.
func (c Codings) IsAny() bool { return c == CodingsAny }

// IsIdentity reports whether the codings is the reserved "identity" value.
func (c Codings) IsIdentity() bool { return util.EqFold(c, CodingsIdentity) }

func (c Codings) Equal(val any) bool {
	var other Codings
	switch v := val.(type) {
	case Codings:
		other = v
	case *Codings:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(c, other)
}

// AcceptEncoding represents the Accept-Encoding header from RFC 7231 Section 5.3.4.
type AcceptEncoding []CodingsRange

// ParseAcceptEncoding parses an Accept-Encoding header value from the given
// input s (string or []byte). The empty input yields an empty header.
func ParseAcceptEncoding[T ~string | ~[]byte](s T) (AcceptEncoding, error) {
	if len(s) == 0 {
		return AcceptEncoding{}, nil
	}

	node, err := grammar.ParseAcceptEncoding(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buildFromAcceptEncodingNode(node), nil
}

func (AcceptEncoding) CanonicName() Name { return "Accept-Encoding" }

func (hdr AcceptEncoding) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.CanonicName(), ": ")
	cw.Call(hdr.renderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func (hdr AcceptEncoding) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderHdrEntries(w, hdr))
}

func (hdr AcceptEncoding) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr AcceptEncoding) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr AcceptEncoding) String() string { return hdr.RenderValue() }

func (hdr AcceptEncoding) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render(nil)))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods AcceptEncoding
		type AcceptEncoding hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptEncoding(hdr))
		return
	}
}

func (hdr AcceptEncoding) Clone() Header { return cloneHdrEntries(hdr) }

func (hdr AcceptEncoding) Equal(val any) bool {
	var other AcceptEncoding
	switch v := val.(type) {
	case AcceptEncoding:
		other = v
	case *AcceptEncoding:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 CodingsRange) bool { return rng1.Equal(rng2) })
}

func (hdr AcceptEncoding) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng CodingsRange) bool { return !rng.IsValid() })
}

func (hdr AcceptEncoding) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AcceptEncoding) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = nil
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(AcceptEncoding)
	if !ok {
		*hdr = nil
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, *hdr))
	}

	*hdr = h
	return nil
}

func buildFromAcceptEncodingNode(node *abnf.Node) AcceptEncoding {
	entryNodes := node.GetNodes("accept-encoding-entry")
	hdr := make(AcceptEncoding, 0, len(entryNodes))
	for _, entryNode := range entryNodes {
		hdr = append(hdr, buildFromCodingsRangeNode(entryNode))
	}
	return hdr
}

// CodingsRange represents a single Accept-Encoding header entry:
// a content coding, "identity" or the "*" wildcard with an optional weight.
type CodingsRange struct {
	Codings Codings
	Weight  *QValue
}

// QValue returns the effective weight of the range:
// the explicit weight if present, the default 1 otherwise.
func (rng CodingsRange) QValue() QValue { return qvalOrDefault(rng.Weight) }

func (rng CodingsRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(util.LCase(string(rng.Codings)))
	renderWeight(sb, rng.Weight) //nolint:errcheck
	return sb.String()
}

func (rng CodingsRange) Format(f fmt.State, verb rune) {
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

		type hideMethods CodingsRange
		type CodingsRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CodingsRange(rng))
		return
	}
}

func (rng CodingsRange) Equal(val any) bool {
	var other CodingsRange
	switch v := val.(type) {
	case CodingsRange:
		other = v
	case *CodingsRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rng.Codings.Equal(other.Codings) && qvalEqual(rng.Weight, other.Weight)
}

func (rng CodingsRange) IsValid() bool {
	if rng.Weight != nil && !rng.Weight.IsValid() {
		return false
	}
	return rng.Codings.IsValid()
}

func (rng CodingsRange) IsZero() bool { return rng.Codings == "" && rng.Weight == nil }

func (rng CodingsRange) Clone() CodingsRange {
	rng.Weight = cloneQVal(rng.Weight)
	return rng
}

func buildFromCodingsRangeNode(node *abnf.Node) CodingsRange {
	rng := CodingsRange{Codings: Codings(node.Children[0].String())}
	if qn, ok := node.GetNode("q-param"); ok {
		rng.Weight = buildFromQParamNode(qn)
	}
	return rng
}
