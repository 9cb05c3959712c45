package header

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/util"
)

// EntityTag represents an entity-tag from RFC 7232 Section 2.3.
// Tag holds the opaque content without the surrounding quotes.
type EntityTag struct {
	Tag  string
	Weak bool
}

// NewEntityTag creates a strong entity tag with the given opaque content.
func NewEntityTag(tag string) EntityTag { return EntityTag{Tag: tag} }

// NewWeakEntityTag creates a weak entity tag with the given opaque content.
func NewWeakEntityTag(tag string) EntityTag { return EntityTag{Tag: tag, Weak: true} }

// ParseEntityTag parses an entity-tag from the given input s (string or []byte).
func ParseEntityTag[T ~string | ~[]byte](s T) (EntityTag, error) {
	node, err := grammar.ParseEntityTag(s)
	if err != nil {
		return EntityTag{}, errtrace.Wrap(err)
	}
	return buildFromEntityTagNode(node), nil
}

// StrongMatch compares two entity tags using the strong comparison of
// RFC 7232 Section 2.3.2: both tags are strong and their opaque contents
// are byte-equal.
func (t EntityTag) StrongMatch(other EntityTag) bool {
	return !t.Weak && !other.Weak && t.Tag == other.Tag
}

// WeakMatch compares two entity tags using the weak comparison of
// RFC 7232 Section 2.3.2: the opaque contents are byte-equal regardless
// of the weakness flags.
func (t EntityTag) WeakMatch(other EntityTag) bool { return t.Tag == other.Tag }

func (t EntityTag) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if t.Weak {
		sb.WriteString("W/")
	}
	sb.WriteByte('"')
	sb.WriteString(t.Tag)
	sb.WriteByte('"')
	return sb.String()
}

func (t EntityTag) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, t.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(t.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, t.String())
			return
		}

		type hideMethods EntityTag
		type EntityTag hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), EntityTag(t))
		return
	}
}

func (t EntityTag) Equal(val any) bool {
	var other EntityTag
	switch v := val.(type) {
	case EntityTag:
		other = v
	case *EntityTag:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return t == other
}

func (t EntityTag) IsValid() bool { return grammar.IsOpaqueTag(t.Tag) }

func (t EntityTag) IsZero() bool { return t == EntityTag{} }

func (t EntityTag) Clone() EntityTag { return t }

func (t EntityTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EntityTag) UnmarshalText(data []byte) error {
	node, err := grammar.ParseEntityTag(data)
	if err != nil {
		*t = EntityTag{}
		if errors.Is(err, grammar.ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	*t = buildFromEntityTagNode(node)
	return nil
}

func buildFromEntityTagNode(node *abnf.Node) EntityTag {
	var t EntityTag
	if wn, ok := node.GetNode("weak"); ok && !wn.IsEmpty() {
		t.Weak = true
	}
	opaque := grammar.MustGetNode(node, "opaque-tag").String()
	t.Tag = opaque[1 : len(opaque)-1]
	return t
}

// EntityTags represents a list of entity tags.
type EntityTags []EntityTag

func (ts EntityTags) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderHdrEntries(sb, ts) //nolint:errcheck
	return sb.String()
}

// ContainsStrong reports whether the list strongly matches the given tag.
func (ts EntityTags) ContainsStrong(tag EntityTag) bool {
	return slices.ContainsFunc(ts, func(t EntityTag) bool { return t.StrongMatch(tag) })
}

// ContainsWeak reports whether the list weakly matches the given tag.
func (ts EntityTags) ContainsWeak(tag EntityTag) bool {
	return slices.ContainsFunc(ts, func(t EntityTag) bool { return t.WeakMatch(tag) })
}

func (ts EntityTags) IsValid() bool {
	return len(ts) > 0 && !slices.ContainsFunc(ts, func(t EntityTag) bool { return !t.IsValid() })
}

func (ts EntityTags) Equal(val any) bool {
	var other EntityTags
	switch v := val.(type) {
	case EntityTags:
		other = v
	case *EntityTags:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(ts, other)
}

func (ts EntityTags) Clone() EntityTags { return cloneHdrEntries(ts) }

func buildFromEntityTagNodes(nodes abnf.Nodes) EntityTags {
	ts := make(EntityTags, 0, len(nodes))
	for _, n := range nodes {
		ts = append(ts, buildFromEntityTagNode(n))
	}
	return ts
}
