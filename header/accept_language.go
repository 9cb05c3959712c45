package header

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

// LanguageAny is the language range wildcard matching any language tag.
const LanguageAny Language = "*"

// Language represents a basic language range from RFC 4647 Section 2.1:
// a sequence of subtags separated by "-", or the "*" wildcard.
// Language ranges are case-insensitive.
type Language string

func (l Language) IsValid() bool { return grammar.IsLanguageRange(l) }

// IsAny reports whether the language is the "*" wildcard.
func (l Language) IsAny() bool { return l == LanguageAny }

// Includes reports whether the range covers the given language tag
// using the basic filtering of RFC 4647 Section 3.3.1: the range either
// equals the tag or is a prefix of it followed by "-".
func (l Language) Includes(tag string) bool {
	if l.IsAny() {
		return true
	}
	if len(tag) < len(l) {
		return false
	}
	if !util.EqFold(string(l), tag[:len(l)]) {
		return false
	}
	return len(tag) == len(l) || tag[len(l)] == '-'
}

// Subtags returns the subtags of the language range.
func (l Language) Subtags() []string { return strings.Split(string(l), "-") }

func (l Language) Equal(val any) bool {
	var other Language
	switch v := val.(type) {
	case Language:
		other = v
	case *Language:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(l, other)
}

// AcceptLanguage represents the Accept-Language header from RFC 7231 Section 5.3.5.
type AcceptLanguage []LanguageRange

// ParseAcceptLanguage parses an Accept-Language header value from the given
// input s (string or []byte). The empty input yields an empty header.
func ParseAcceptLanguage[T ~string | ~[]byte](s T) (AcceptLanguage, error) {
	if len(s) == 0 {
		return AcceptLanguage{}, nil
	}

	node, err := grammar.ParseAcceptLanguage(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buildFromAcceptLanguageNode(node), nil
}

func (AcceptLanguage) CanonicName() Name { return "Accept-Language" }

func (hdr AcceptLanguage) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.CanonicName(), ": ")
	cw.Call(hdr.renderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func (hdr AcceptLanguage) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderHdrEntries(w, hdr))
}

func (hdr AcceptLanguage) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr AcceptLanguage) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr AcceptLanguage) String() string { return hdr.RenderValue() }

func (hdr AcceptLanguage) Format(f fmt.State, verb rune) {
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
		type hideMethods AcceptLanguage
		type AcceptLanguage hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptLanguage(hdr))
		return
	}
}

func (hdr AcceptLanguage) Clone() Header { return cloneHdrEntries(hdr) }

func (hdr AcceptLanguage) Equal(val any) bool {
	var other AcceptLanguage
	switch v := val.(type) {
	case AcceptLanguage:
		other = v
	case *AcceptLanguage:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(rng1, rng2 LanguageRange) bool { return rng1.Equal(rng2) })
}

func (hdr AcceptLanguage) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(rng LanguageRange) bool { return !rng.IsValid() })
}

func (hdr AcceptLanguage) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AcceptLanguage) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = nil
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(AcceptLanguage)
	if !ok {
		*hdr = nil
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, *hdr))
	}

	*hdr = h
	return nil
}

func buildFromAcceptLanguageNode(node *abnf.Node) AcceptLanguage {
	entryNodes := node.GetNodes("accept-language-entry")
	hdr := make(AcceptLanguage, 0, len(entryNodes))
	for _, entryNode := range entryNodes {
		hdr = append(hdr, buildFromLanguageRangeNode(entryNode))
	}
	return hdr
}

// LanguageRange represents a single Accept-Language header entry:
// a language range with an optional weight.
type LanguageRange struct {
	Language Language
	Weight   *QValue
}

// QValue returns the effective weight of the range:
// the explicit weight if present, the default 1 otherwise.
func (rng LanguageRange) QValue() QValue { return qvalOrDefault(rng.Weight) }

func (rng LanguageRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(util.LCase(string(rng.Language)))
	renderWeight(sb, rng.Weight) //nolint:errcheck
	return sb.String()
}

func (rng LanguageRange) Format(f fmt.State, verb rune) {
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

		type hideMethods LanguageRange
		type LanguageRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), LanguageRange(rng))
		return
	}
}

func (rng LanguageRange) Equal(val any) bool {
	var other LanguageRange
	switch v := val.(type) {
	case LanguageRange:
		other = v
	case *LanguageRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return rng.Language.Equal(other.Language) && qvalEqual(rng.Weight, other.Weight)
}

func (rng LanguageRange) IsValid() bool {
	if rng.Weight != nil && !rng.Weight.IsValid() {
		return false
	}
	return rng.Language.IsValid()
}

func (rng LanguageRange) IsZero() bool { return rng.Language == "" && rng.Weight == nil }

func (rng LanguageRange) Clone() LanguageRange {
	rng.Weight = cloneQVal(rng.Weight)
	return rng
}

func buildFromLanguageRangeNode(node *abnf.Node) LanguageRange {
	rng := LanguageRange{Language: Language(grammar.MustGetNode(node, "language-range").String())}
	if qn, ok := node.GetNode("q-param"); ok {
		rng.Weight = buildFromQParamNode(qn)
	}
	return rng
}
