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

// CharsetAny is the charset wildcard matching any charset.
const CharsetAny Charset = "*"

// Charset represents a charset name from RFC 7231 Section 3.1.1.2.
// Charset names are case-insensitive.
type Charset string

func (c Charset) IsValid() bool { return grammar.IsToken(c) }

// IsAny reports whether the charset is the "*" wildcard.
func (c Charset) IsAny() bool { return c == CharsetAny }

func (c Charset) Equal(val any) bool {
	var other Charset
	switch v := val.(type) {
	case Charset:
		other = v
	case *Charset:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(c, other)
}

// AcceptCharset represents the Accept-Charset header from RFC 7231 Section 5.3.3.
type AcceptCharset []CharsetRange

// ParseAcceptCharset parses an Accept-Charset header value from the given
// input s (string or []byte). At least one entry is required.
func ParseAcceptCharset[T ~string | ~[]byte](s T) (AcceptCharset, error) {
	node, err := grammar.ParseAcceptCharset(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buildFromAcceptCharsetNode(node), nil
}

func (AcceptCharset) CanonicName() Name { return "Accept-Charset" }

func (hdr AcceptCharset) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.CanonicName(), ": ")
	cw.Call(hdr.renderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func (hdr AcceptCharset) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderHdrEntries(w, hdr))
}

func (hdr AcceptCharset) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr AcceptCharset) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr AcceptCharset) String() string { return hdr.RenderValue() }

func (hdr AcceptCharset) Format(f fmt.State, verb rune) {
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
		type hideMethods AcceptCharset
		type AcceptCharset hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptCharset(hdr))
		return
	}
}

func (hdr AcceptCharset) Clone() Header { return cloneHdrEntries(hdr) }

func (hdr AcceptCharset) Equal(val any) bool {
	var other AcceptCharset
	switch v := val.(type) {
	case AcceptCharset:
		other = v
	case *AcceptCharset:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 CharsetRange) bool { return rng1.Equal(rng2) })
}

func (hdr AcceptCharset) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(rng CharsetRange) bool { return !rng.IsValid() })
}

func (hdr AcceptCharset) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AcceptCharset) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = nil
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(AcceptCharset)
	if !ok {
		*hdr = nil
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, *hdr))
	}

	*hdr = h
	return nil
}

func buildFromAcceptCharsetNode(node *abnf.Node) AcceptCharset {
	entryNodes := node.GetNodes("accept-charset-entry")
	hdr := make(AcceptCharset, 0, len(entryNodes))
	for _, entryNode := range entryNodes {
		hdr = append(hdr, buildFromCharsetRangeNode(entryNode))
	}
	return hdr
}

// CharsetRange represents a single Accept-Charset header entry:
// a charset or the "*" wildcard with an optional weight.
type CharsetRange struct {
	Charset Charset
	Weight  *QValue
}

// QValue returns the effective weight of the range:
// the explicit weight if present, the default 1 otherwise.
func (rng CharsetRange) QValue() QValue { return qvalOrDefault(rng.Weight) }

func (rng CharsetRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(util.LCase(string(rng.Charset)))
	renderWeight(sb, rng.Weight) //nolint:errcheck
	return sb.String()
}

func (rng CharsetRange) Format(f fmt.State, verb rune) {
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

		type hideMethods CharsetRange
		type CharsetRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CharsetRange(rng))
		return
	}
}

func (rng CharsetRange) Equal(val any) bool {
	var other CharsetRange
	switch v := val.(type) {
	case CharsetRange:
		other = v
	case *CharsetRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rng.Charset.Equal(other.Charset) && qvalEqual(rng.Weight, other.Weight)
}

func (rng CharsetRange) IsValid() bool {
	if rng.Weight != nil && !rng.Weight.IsValid() {
		return false
	}
	return rng.Charset.IsValid()
}

func (rng CharsetRange) IsZero() bool { return rng.Charset == "" && rng.Weight == nil }

func (rng CharsetRange) Clone() CharsetRange {
	rng.Weight = cloneQVal(rng.Weight)
	return rng
}

func buildFromCharsetRangeNode(node *abnf.Node) CharsetRange {
	rng := CharsetRange{Charset: Charset(node.Children[0].String())}
	if qn, ok := node.GetNode("q-param"); ok {
		rng.Weight = buildFromQParamNode(qn)
	}
	return rng
}
