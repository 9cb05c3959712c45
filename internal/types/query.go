package types

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/constraints"
	"github.com/ghettovoice/httphead/internal/errorutil"
)

// ErrMalformedQuery is returned for a query pair without a "=" separator.
const ErrMalformedQuery errorutil.Error = "malformed query pair"

// Query holds request query parameters as a key to value map.
// Keys and values are stored as split, without percent-decoding.
// On duplicate keys the last value wins.
type Query map[string]string

// ParseQuery splits s on "&" and each pair on the first "=".
// A pair without "=" yields an [ErrMalformedQuery] error.
// The empty input yields an empty query.
func ParseQuery[T constraints.Byteseq](s T) (Query, error) {
	q := make(Query)
	if len(s) == 0 {
		return q, nil
	}
	for pair := range strings.SplitSeq(string(s), "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedQuery, "no %q in %q", "=", pair))
		}
		q[k] = v
	}
	return q, nil
}

// Has checks whether a given key is in the query.
func (q Query) Has(key string) bool {
	_, ok := q[key]
	return ok
}

// Clone returns a copy of the query.
func (q Query) Clone() Query {
	var q2 Query
	for k, v := range q {
		if q2 == nil {
			q2 = make(Query, len(q))
		}
		q2[k] = v
	}
	return q2
}
