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

// Accept represents the Accept header from RFC 7231 Section 5.3.2.
type Accept []AcceptRange

// ParseAccept parses an Accept header value from the given input s (string or []byte).
// The empty input yields an empty header.
func ParseAccept[T ~string | ~[]byte](s T) (Accept, error) {
	if len(s) == 0 {
		return Accept{}, nil
	}

	node, err := grammar.ParseAccept(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buildFromAcceptNode(node), nil
}

func (Accept) CanonicName() Name { return "Accept" }

func (hdr Accept) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.CanonicName(), ": ")
	cw.Call(hdr.renderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func (hdr Accept) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderHdrEntries(w, hdr))
}

func (hdr Accept) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr Accept) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr Accept) String() string { return hdr.RenderValue() }

func (hdr Accept) Format(f fmt.State, verb rune) {
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
		type hideMethods Accept
		type Accept hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Accept(hdr))
		return
	}
}

func (hdr Accept) Clone() Header { return cloneHdrEntries(hdr) }

func (hdr Accept) Equal(val any) bool {
	var other Accept
	switch v := val.(type) {
	case Accept:
		other = v
	case *Accept:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 AcceptRange) bool { return rng1.Equal(rng2) })
}

func (hdr Accept) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng AcceptRange) bool { return !rng.IsValid() })
}

func (hdr Accept) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Accept) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = nil
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(Accept)
	if !ok {
		*hdr = nil
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, *hdr))
	}

	*hdr = h
	return nil
}

func buildFromAcceptNode(node *abnf.Node) Accept {
	entryNodes := node.GetNodes("accept-entry")
	hdr := make(Accept, 0, len(entryNodes))
	for _, entryNode := range entryNodes {
		hdr = append(hdr, buildFromAcceptEntryNode(entryNode))
	}
	return hdr
}

// AcceptRange represents a single Accept header entry: a media range
// with an optional weight and extension parameters following the weight.
type AcceptRange struct {
	MediaRange
	Weight *QValue
	Ext    Values
}

// ParseAcceptRange parses a single Accept header entry from the given input s (string or []byte).
func ParseAcceptRange[T ~string | ~[]byte](s T) (AcceptRange, error) {
	node, err := grammar.ParseAcceptEntry(s)
	if err != nil {
		return AcceptRange{}, errtrace.Wrap(err)
	}
	return buildFromAcceptEntryNode(node), nil
}

// QValue returns the effective weight of the range:
// the explicit weight if present, the default 1 otherwise.
func (rng AcceptRange) QValue() QValue { return qvalOrDefault(rng.Weight) }

func (rng AcceptRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(rng.MediaRange.String())
	renderWeight(sb, rng.Weight) //nolint:errcheck
	renderHdrParams(sb, rng.Ext) //nolint:errcheck
	return sb.String()
}

func (rng AcceptRange) Format(f fmt.State, verb rune) {
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

		type hideMethods AcceptRange
		type AcceptRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptRange(rng))
		return
	}
}

func (rng AcceptRange) Equal(val any) bool {
	var other AcceptRange
	switch v := val.(type) {
	case AcceptRange:
		other = v
	case *AcceptRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rng.MediaRange.Equal(other.MediaRange) &&
		qvalEqual(rng.Weight, other.Weight) &&
		compareHdrParams(rng.Ext, other.Ext, nil)
}

func (rng AcceptRange) IsValid() bool {
	if rng.Weight != nil && !rng.Weight.IsValid() {
		return false
	}
	return rng.MediaRange.IsValid() && validateHdrParams(rng.Ext)
}

func (rng AcceptRange) IsZero() bool {
	return rng.MediaRange.IsZero() && rng.Weight == nil && len(rng.Ext) == 0
}

func (rng AcceptRange) Clone() AcceptRange {
	rng.MediaRange = rng.MediaRange.Clone()
	rng.Weight = cloneQVal(rng.Weight)
	rng.Ext = rng.Ext.Clone()
	return rng
}

func (rng AcceptRange) MarshalText() ([]byte, error) {
	return []byte(rng.String()), nil
}

func (rng *AcceptRange) UnmarshalText(data []byte) error {
	node, err := grammar.ParseAcceptEntry(data)
	if err != nil {
		*rng = AcceptRange{}
		if errors.Is(err, grammar.ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	*rng = buildFromAcceptEntryNode(node)
	return nil
}

func buildFromAcceptEntryNode(node *abnf.Node) AcceptRange {
	rng := AcceptRange{
		MediaRange: buildFromMediaRangeNode(grammar.MustGetNode(node, "media-range")),
	}

	// Parameters before the first q-param belong to the media range,
	// the first q-param becomes the weight, the rest are extension parameters.
	// A repeated q-param is kept as an extension parameter too.
	for _, pn := range node.GetNodes("accept-param") {
		if qn, ok := pn.GetNode("q-param"); ok {
			if rng.Weight == nil {
				rng.Weight = buildFromQParamNode(qn)
			} else {
				if rng.Ext == nil {
					rng.Ext = make(Values)
				}
				rng.Ext.Append("q", grammar.MustGetNode(qn, "qvalue").String())
			}
			continue
		}

		p, ok := pn.GetNode("parameter")
		if !ok {
			continue
		}
		kv := buildFromParameterNode(p)
		if rng.Weight == nil {
			if rng.Params == nil {
				rng.Params = make(Values)
			}
			rng.Params.Append(kv[0], kv[1])
		} else {
			if rng.Ext == nil {
				rng.Ext = make(Values)
			}
			rng.Ext.Append(kv[0], kv[1])
		}
	}
	return rng
}
