// Package httphead implements parsing and rendering of HTTP request
// metadata: methods, protocol versions, URI schemes, query strings and,
// through the header subpackage, typed header field values built on the
// ABNF grammars of RFC 7230, RFC 7231 and RFC 7232.
package httphead

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/constraints"
	"github.com/ghettovoice/httphead/internal/types"
)

// Version is the current httphead package version.
var Version = "0.0.0"

// Method represents an HTTP request method.
type Method = types.Method

const (
	MethodDelete  = types.MethodDelete
	MethodGet     = types.MethodGet
	MethodHead    = types.MethodHead
	MethodOptions = types.MethodOptions
	MethodPatch   = types.MethodPatch
	MethodPost    = types.MethodPost
	MethodPut     = types.MethodPut
	MethodTrace   = types.MethodTrace
)

// ParseMethod maps s to one of the standard methods or,
// for any other value, to a custom method. It never fails.
// Method names are case-sensitive: "get" is a custom method, not [MethodGet].
func ParseMethod[T constraints.Byteseq](s T) Method { return types.ParseMethod(s) }

// Proto represents protocol information of a request line (name and version).
type Proto = types.Proto

var (
	ProtoHTTP10 = types.ProtoHTTP10
	ProtoHTTP11 = types.ProtoHTTP11
)

// ParseProto maps s to one of the known HTTP protocol variants or,
// for any other value, to a custom protocol. It never fails.
func ParseProto[T constraints.Byteseq](s T) Proto { return types.ParseProto(s) }

// Scheme represents a URI scheme.
type Scheme = types.Scheme

const (
	SchemeHTTP  = types.SchemeHTTP
	SchemeHTTPS = types.SchemeHTTPS
)

// ParseScheme maps s to one of the known schemes or,
// for any other value, to a custom scheme. It never fails.
// No case folding is applied: "HTTP" is a custom scheme.
func ParseScheme[T constraints.Byteseq](s T) Scheme { return types.ParseScheme(s) }

// Query holds request query parameters as a key to value map.
type Query = types.Query

// ErrMalformedQuery is returned for a query pair without a "=" separator.
const ErrMalformedQuery = types.ErrMalformedQuery

// ParseQuery splits s on "&" and each pair on the first "=".
// A pair without "=" yields an [ErrMalformedQuery] error.
// The empty input yields an empty query.
func ParseQuery[T constraints.Byteseq](s T) (Query, error) {
	return errtrace.Wrap2(types.ParseQuery(s))
}
