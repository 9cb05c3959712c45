package types

import (
	"github.com/ghettovoice/httphead/internal/constraints"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/util"
)

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// Scheme represents a URI scheme.
type Scheme string

// ParseScheme maps s to one of the known schemes or,
// for any other value, to a custom scheme. It never fails.
// No case folding is applied: "HTTP" is a custom scheme.
func ParseScheme[T constraints.Byteseq](s T) Scheme {
	switch string(s) {
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	}
	return Scheme(s)
}

// IsKnown reports whether the scheme is one of the schemes known to the lib.
func (s Scheme) IsKnown() bool { return s == SchemeHTTP || s == SchemeHTTPS }

// Port returns the default port of a known scheme, 0 otherwise.
func (s Scheme) Port() uint16 {
	switch s {
	case SchemeHTTP:
		return 80
	case SchemeHTTPS:
		return 443
	default:
		return 0
	}
}

func (s Scheme) IsValid() bool { return grammar.IsScheme(s) }

func (s Scheme) Equal(val any) bool {
	var other Scheme
	switch v := val.(type) {
	case Scheme:
		other = v
	case *Scheme:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(s, other)
}
