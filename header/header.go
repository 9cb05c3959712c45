package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"fmt"
	"io"
	"net/textproto"
	"slices"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/types"
	"github.com/ghettovoice/httphead/internal/util"
)

// Values represents header parameters as a multi-value map.
type Values = types.Values

// RenderOptions contains options for rendering headers.
type RenderOptions = types.RenderOptions

// Header represents a generic HTTP header.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.ValidFlag
	types.Equalable
	CanonicName() Name
	RenderValue() string
}

// Name represents an HTTP header field name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"Content-Md5":      "Content-MD5",
	"Etag":             "ETag",
	"Te":               "TE",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "accept-encoding" is "Accept-Encoding".
// Names whose registered form does not follow that pattern, like "ETag", are mapped explicitly.
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	cn := textproto.CanonicalMIMEHeaderKey(string(name))
	if n, ok := hdrNames[cn]; ok {
		return n
	}
	return Name(cn)
}

func renderHdrEntries[H ~[]E, E any](w io.Writer, hdr H) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range hdr {
		if i > 0 {
			cw.Fprint(", ")
		}
		cw.Fprint(hdr[i])
	}
	return errtrace.Wrap2(cw.Result())
}

func renderHdrParams(w io.Writer, params Values) (num int, err error) {
	if len(params) == 0 {
		return 0, nil
	}

	// Sort parameters in alphabet order to get a stable render.
	var kvs [][]string //nolint:prealloc
	for k := range params {
		v, _ := params.Last(k)
		if v != "" && !grammar.IsToken(v) {
			v = grammar.Quote(v)
		}
		kvs = append(kvs, []string{util.LCase(k), v})
	}
	slices.SortFunc(kvs, util.CmpKVs)

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, kv := range kvs {
		cw.Fprint(";", kv[0])
		if kv[1] != "" {
			cw.Fprint("=", kv[1])
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func renderWeight(w io.Writer, q *QValue) (num int, err error) {
	if q == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, ";q=", q.String()))
}

func compareHdrParams(params1, params2 Values, specParams map[string]bool) bool {
	switch {
	case len(params1) == 0 && len(params2) == 0:
		return true
	case len(params1) == 0:
		return !hasSpecHdrParam(params2, specParams)
	case len(params2) == 0:
		return !hasSpecHdrParam(params1, specParams)
	}

	checked := map[string]bool{}
	// Any non-special parameters appearing in only one list are ignored.
	// First, traverse over self-parameters, compare values appearing in both lists,
	// check on speciality and save checked param names.
	for k := range params1 {
		if params2.Has(k) {
			// Any parameter appearing in both lists must match.
			v1, _ := params1.Last(k)
			v2, _ := params2.Last(k)
			if !grammar.IsQuoted(v1) {
				v1 = util.LCase(v1)
			}
			if !grammar.IsQuoted(v2) {
				v2 = util.LCase(v2)
			}
			if v1 != v2 {
				return false
			}
		} else if specParams[util.LCase(k)] {
			// Any special parameter appearing in one list must appear in the other.
			return false
		}
		checked[util.LCase(k)] = true
	}
	// Then need only check that there are no non-checked special parameters in the other list.
	for k := range specParams {
		if checked[k] {
			continue
		}
		if params2.Has(k) {
			return false
		}
	}
	return true
}

func hasSpecHdrParam(params Values, specParams map[string]bool) bool {
	for k := range specParams {
		if params.Has(k) {
			return true
		}
	}
	return false
}

func validateHdrParams(params Values) bool {
	for k := range params {
		if !grammar.IsToken(k) {
			return false
		}
		v, _ := params.Last(k)
		if v != "" && !(grammar.IsToken(v) || grammar.IsQuotable(v)) {
			return false
		}
	}
	return true
}

func cloneHdrEntries[H ~[]E, E interface{ Clone() E }](hdr H) H {
	var hdr2 H
	if hdr == nil {
		return hdr2
	}
	hdr2 = make(H, len(hdr))
	for i := range hdr {
		hdr2[i] = hdr[i].Clone()
	}
	return hdr2
}

// Parser is a function type for parsing a custom HTTP header.
type Parser func(name string, value []byte) Header

var customParsers sync.Map // map[string]Parser

// RegisterParser registers a custom HTTP header parser.
func RegisterParser(name string, parser Parser) {
	customParsers.Store(util.LCase(name), parser)
}

// UnregisterParser unregisters a custom HTTP header parser.
func UnregisterParser(name string) {
	customParsers.Delete(util.LCase(name))
}

// Parse parses an HTTP header field value under the given field name and
// returns the parsed header as an instance of [Header].
// If the parsing fails, an error is returned along with nil as the header value.
//
// Example usage:
//
//	hdr, err := header.Parse("Accept", "text/html, application/json;q=0.9")
func Parse[T ~string | ~[]byte](name string, value T) (Header, error) {
	switch CanonicName(name) {
	case "Accept":
		return errtrace.Wrap2(wrapHdr(ParseAccept(value)))
	case "Accept-Charset":
		return errtrace.Wrap2(wrapHdr(ParseAcceptCharset(value)))
	case "Accept-Encoding":
		return errtrace.Wrap2(wrapHdr(ParseAcceptEncoding(value)))
	case "Accept-Language":
		return errtrace.Wrap2(wrapHdr(ParseAcceptLanguage(value)))
	case "If-Match":
		return errtrace.Wrap2(wrapHdr(ParseIfMatch(value)))
	case "If-None-Match":
		return errtrace.Wrap2(wrapHdr(ParseIfNoneMatch(value)))
	default:
		if prs, ok := customParsers.Load(util.LCase(name)); ok && prs != nil {
			//nolint:forcetypeassert
			if hdr := prs.(Parser)(name, []byte(value)); hdr != nil {
				return hdr, nil
			}
		}
		return &Any{Name: name, Value: string(value)}, nil
	}
}

func wrapHdr[H Header](hdr H, err error) (Header, error) {
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.CanonicName()),
			Value: hdr.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(hd))
}

var errNotHeaderJSON errorutil.Error = "not a header JSON"

func FromJSON[T ~string | ~[]byte](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}

	hdr, err := Parse(hd.Name, hd.Value)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("parse header %q: %w", hd.Name, err))
	}
	return hdr, nil
}
