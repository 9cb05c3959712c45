package header

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

// IfMatch represents the If-Match header from RFC 7232 Section 3.1:
// either the "*" wildcard or a list of entity tags.
type IfMatch struct {
	Any  bool
	Tags EntityTags
}

// ParseIfMatch parses an If-Match header value from the given input s
// (string or []byte). The empty input yields an empty header.
func ParseIfMatch[T ~string | ~[]byte](s T) (IfMatch, error) {
	if len(s) == 0 {
		return IfMatch{}, nil
	}

	node, err := grammar.ParseIfMatch(s)
	if err != nil {
		return IfMatch{}, errtrace.Wrap(err)
	}
	return buildFromIfMatchNode(node), nil
}

// Match evaluates the precondition against the given current entity tag.
// The wildcard matches any tag, otherwise the strong comparison is used.
func (hdr IfMatch) Match(tag EntityTag) bool {
	if hdr.Any {
		return true
	}
	return hdr.Tags.ContainsStrong(tag)
}

func (IfMatch) CanonicName() Name { return "If-Match" }

func (hdr IfMatch) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.CanonicName(), ": ")
	cw.Call(hdr.renderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func (hdr IfMatch) renderValueTo(w io.Writer) (num int, err error) {
	if hdr.Any {
		return errtrace.Wrap2(io.WriteString(w, "*"))
	}
	return errtrace.Wrap2(renderHdrEntries(w, hdr.Tags))
}

func (hdr IfMatch) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr IfMatch) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr IfMatch) String() string { return hdr.RenderValue() }

func (hdr IfMatch) Format(f fmt.State, verb rune) {
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
		type hideMethods IfMatch
		type IfMatch hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), IfMatch(hdr))
		return
	}
}

func (hdr IfMatch) Clone() Header {
	hdr.Tags = hdr.Tags.Clone()
	return hdr
}

func (hdr IfMatch) Equal(val any) bool {
	var other IfMatch
	switch v := val.(type) {
	case IfMatch:
		other = v
	case *IfMatch:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.Any == other.Any && hdr.Tags.Equal(other.Tags)
}

func (hdr IfMatch) IsValid() bool {
	if hdr.Any {
		return len(hdr.Tags) == 0
	}
	return hdr.Tags.IsValid()
}

func (hdr IfMatch) IsZero() bool { return !hdr.Any && len(hdr.Tags) == 0 }

func (hdr IfMatch) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *IfMatch) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = IfMatch{}
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(IfMatch)
	if !ok {
		*hdr = IfMatch{}
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, *hdr))
	}

	*hdr = h
	return nil
}

func buildFromIfMatchNode(node *abnf.Node) IfMatch {
	var hdr IfMatch
	if _, ok := node.GetNode("etags-any"); ok {
		hdr.Any = true
		return hdr
	}
	hdr.Tags = buildFromEntityTagNodes(node.GetNodes("entity-tag"))
	return hdr
}
