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

// IfNoneMatch represents the If-None-Match header from RFC 7232 Section 3.2:
// either the "*" wildcard or a list of entity tags.
type IfNoneMatch struct {
	Any  bool
	Tags EntityTags
}

// ParseIfNoneMatch parses an If-None-Match header value from the given
// input s (string or []byte). The empty input yields an empty header.
func ParseIfNoneMatch[T ~string | ~[]byte](s T) (IfNoneMatch, error) {
	if len(s) == 0 {
		return IfNoneMatch{}, nil
	}

	node, err := grammar.ParseIfNoneMatch(s)
	if err != nil {
		return IfNoneMatch{}, errtrace.Wrap(err)
	}
	return buildFromIfNoneMatchNode(node), nil
}

// Match evaluates the header against the given current entity tag.
// The wildcard matches any tag, otherwise the weak comparison is used.
// The precondition of RFC 7232 Section 3.2 fails when Match returns true.
func (hdr IfNoneMatch) Match(tag EntityTag) bool {
	if hdr.Any {
		return true
	}
	return hdr.Tags.ContainsWeak(tag)
}

func (IfNoneMatch) CanonicName() Name { return "If-None-Match" }

func (hdr IfNoneMatch) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.CanonicName(), ": ")
	cw.Call(hdr.renderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func (hdr IfNoneMatch) renderValueTo(w io.Writer) (num int, err error) {
	if hdr.Any {
		return errtrace.Wrap2(io.WriteString(w, "*"))
	}
	return errtrace.Wrap2(renderHdrEntries(w, hdr.Tags))
}

func (hdr IfNoneMatch) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr IfNoneMatch) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr IfNoneMatch) String() string { return hdr.RenderValue() }

func (hdr IfNoneMatch) Format(f fmt.State, verb rune) {
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
		type hideMethods IfNoneMatch
		type IfNoneMatch hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), IfNoneMatch(hdr))
		return
	}
}

func (hdr IfNoneMatch) Clone() Header {
	hdr.Tags = hdr.Tags.Clone()
	return hdr
}

func (hdr IfNoneMatch) Equal(val any) bool {
	var other IfNoneMatch
	switch v := val.(type) {
	case IfNoneMatch:
		other = v
	case *IfNoneMatch:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.Any == other.Any && hdr.Tags.Equal(other.Tags)
}

func (hdr IfNoneMatch) IsValid() bool {
	if hdr.Any {
		return len(hdr.Tags) == 0
	}
	return hdr.Tags.IsValid()
}

func (hdr IfNoneMatch) IsZero() bool { return !hdr.Any && len(hdr.Tags) == 0 }

func (hdr IfNoneMatch) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *IfNoneMatch) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = IfNoneMatch{}
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(IfNoneMatch)
	if !ok {
		*hdr = IfNoneMatch{}
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, *hdr))
	}

	*hdr = h
	return nil
}

func buildFromIfNoneMatchNode(node *abnf.Node) IfNoneMatch {
	var hdr IfNoneMatch
	if _, ok := node.GetNode("etags-any"); ok {
		hdr.Any = true
		return hdr
	}
	hdr.Tags = buildFromEntityTagNodes(node.GetNodes("entity-tag"))
	return hdr
}
