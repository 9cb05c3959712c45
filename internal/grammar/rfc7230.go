package grammar

import (
	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"
)

// Generic syntax rules from RFC 7230 Section 3.2, plus the URI scheme
// rule from RFC 3986 Section 3.1.

var core = abnf_core.Operators()

// OWS = *( SP / HTAB )
var ows = abnf.Repeat0Inf("OWS", abnf.Alt("SP / HTAB", core.SP, core.HTAB))

// tchar-sym = "!" / "#" / "$" / "%" / "&" / "'" / "*"
//
//	/ "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
var tcharSym = abnf.Alt("tchar-sym",
	abnf.Literal(`"!"`, []byte("!")),
	abnf.Literal(`"#"`, []byte("#")),
	abnf.Literal(`"$"`, []byte("$")),
	abnf.Literal(`"%"`, []byte("%")),
	abnf.Literal(`"&"`, []byte("&")),
	abnf.Literal(`"'"`, []byte("'")),
	abnf.Literal(`"*"`, []byte("*")),
	abnf.Literal(`"+"`, []byte("+")),
	abnf.Literal(`"-"`, []byte("-")),
	abnf.Literal(`"."`, []byte(".")),
	abnf.Literal(`"^"`, []byte("^")),
	abnf.Literal(`"_"`, []byte("_")),
	abnf.Literal("\"`\"", []byte("`")),
	abnf.Literal(`"|"`, []byte("|")),
	abnf.Literal(`"~"`, []byte("~")),
)

// tchar = tchar-sym / DIGIT / ALPHA
var tchar = abnf.Alt("tchar", tcharSym, core.DIGIT, core.ALPHA)

// token = 1*tchar
var token = abnf.Repeat1Inf("token", tchar)

// obs-text = %x80-FF
var obsText = abnf.Range("obs-text", []byte{0x80}, []byte{0xFF})

// qdtext = HTAB / SP / %x21 / %x23-5B / %x5D-7E / obs-text
var qdtext = abnf.Alt("qdtext",
	core.HTAB,
	core.SP,
	abnf.Literal(`%x21`, []byte{0x21}),
	abnf.Range(`%x23-5B`, []byte{0x23}, []byte{0x5B}),
	abnf.Range(`%x5D-7E`, []byte{0x5D}, []byte{0x7E}),
	obsText,
)

// quoted-pair = "\" ( HTAB / SP / VCHAR / obs-text )
var quotedPair = abnf.Concat("quoted-pair",
	abnf.Literal(`"\"`, []byte(`\`)),
	abnf.Alt("HTAB / SP / VCHAR / obs-text", core.HTAB, core.SP, core.VCHAR, obsText),
)

// quoted-string = DQUOTE *( qdtext / quoted-pair ) DQUOTE
var quotedString = abnf.Concat("quoted-string",
	core.DQUOTE,
	abnf.Repeat0Inf("*( qdtext / quoted-pair )", abnf.Alt("qdtext / quoted-pair", qdtext, quotedPair)),
	core.DQUOTE,
)

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var scheme = abnf.Concat("scheme",
	core.ALPHA,
	abnf.Repeat0Inf(`*( ALPHA / DIGIT / "+" / "-" / "." )`,
		abnf.Alt(`ALPHA / DIGIT / "+" / "-" / "."`,
			core.ALPHA,
			core.DIGIT,
			abnf.Literal(`"+"`, []byte("+")),
			abnf.Literal(`"-"`, []byte("-")),
			abnf.Literal(`"."`, []byte(".")),
		),
	),
)

var (
	comma     = abnf.Literal(`","`, []byte(","))
	semicolon = abnf.Literal(`";"`, []byte(";"))
)

// infix builds the receiver variant of the RFC 7230 "#element" list rule
// with an empty list allowed:
//
//	#element = OWS [ ( sep / element ) *( OWS sep [ OWS element ] ) ] OWS
//
// Empty list elements are accepted and produce no element nodes.
func infix(key string, sep, elem abnf.Operator) abnf.Operator {
	return abnf.Concat(key,
		ows,
		abnf.Optional(key+"-list",
			abnf.Concat(key+"-items",
				abnf.Alt(key+"-head", sep, elem),
				listTail(key, sep, elem),
			),
		),
		ows,
	)
}

// infix1 builds the receiver variant of the RFC 7230 "1#element" list rule,
// requiring at least one element:
//
//	1#element = OWS *( sep OWS ) element *( OWS sep [ OWS element ] ) OWS
func infix1(key string, sep, elem abnf.Operator) abnf.Operator {
	return abnf.Concat(key,
		ows,
		abnf.Repeat0Inf(key+"-lead", abnf.Concat(key+"-lead-sep", sep, ows)),
		elem,
		listTail(key, sep, elem),
		ows,
	)
}

func listTail(key string, sep, elem abnf.Operator) abnf.Operator {
	return abnf.Repeat0Inf(key+"-tail",
		abnf.Concat(key+"-next",
			ows,
			sep,
			abnf.Optional(key+"-item", abnf.Concat(key+"-val", ows, elem)),
		),
	)
}

// prefix builds a separator-prefixed list rule:
//
//	*( OWS sep OWS element )
func prefix(key string, sep, elem abnf.Operator) abnf.Operator {
	return abnf.Repeat0Inf(key, abnf.Concat(key+"-item", ows, sep, ows, elem))
}
