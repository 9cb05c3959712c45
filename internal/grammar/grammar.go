// Package grammar implements the layered ABNF grammars behind HTTP header
// field values: RFC 5234 core rules, RFC 7230 generic syntax and its list
// extension, RFC 7231 content negotiation and RFC 7232 conditional requests.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/util"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrNodeNotFound Error = "node not found"

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := token([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

func IsQuoted[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := quotedString([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsQuotable reports whether s can be carried inside a quoted-string:
// every character is HTAB, SP, VCHAR or obs-text.
func IsQuotable[T ~string | ~[]byte](s T) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\t' && c != ' ' && (c < 0x21 || c == 0x7F) {
			return false
		}
	}
	return true
}

func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := scheme([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

func IsLanguageRange[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := languageRange([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsOpaqueTag reports whether s is a valid entity-tag opaque content,
// i.e. a possibly empty run of etagc characters (quotes excluded).
func IsOpaqueTag[T ~string | ~[]byte](s T) bool {
	ns := abnf.NewNodes()
	defer ns.Free()

	qs := make([]byte, 0, len(s)+2)
	qs = append(qs, '"')
	qs = append(qs, s...)
	qs = append(qs, '"')
	if err := opaqueTag(qs, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(qs)
}

// Quote wraps s into a quoted-string, escaping '"' and '\' as quoted-pairs.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote removes the surrounding DQUOTEs and unwraps quoted-pairs,
// so the result holds the literal characters without backslashes.
// If s is not a valid quoted-string it is returned unchanged.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	inner := s[1 : len(s)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		sb.WriteByte(inner[i])
	}
	return sb.String()
}
