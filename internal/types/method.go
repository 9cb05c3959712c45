package types

import (
	"github.com/ghettovoice/httphead/internal/constraints"
	"github.com/ghettovoice/httphead/internal/grammar"
)

const (
	MethodDelete  Method = "DELETE"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodPatch   Method = "PATCH"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodTrace   Method = "TRACE"
)

// Method represents an HTTP request method.
// Method names are case-sensitive (RFC 7231 Section 4.1):
// "get" is a custom method, not [MethodGet].
type Method string

// ParseMethod maps s to one of the standard methods or,
// for any other value, to a custom method. It never fails.
func ParseMethod[T constraints.Byteseq](s T) Method { return Method(s) }

// IsStandard reports whether the method is one of the methods
// registered by RFC 7231 and RFC 5789.
func (m Method) IsStandard() bool {
	switch m {
	case MethodDelete, MethodGet, MethodHead, MethodOptions,
		MethodPatch, MethodPost, MethodPut, MethodTrace:
		return true
	default:
		return false
	}
}

func (m Method) IsValid() bool { return grammar.IsToken(m) }

func (m Method) Equal(val any) bool {
	var other Method
	switch v := val.(type) {
	case Method:
		other = v
	case *Method:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return m == other
}
