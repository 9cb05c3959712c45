package grammar

import (
	"github.com/ghettovoice/abnf"
)

// Content negotiation rules from RFC 7231 Section 5.3, with the
// language-range rule from RFC 4647 Section 2.1.

// qvalue = ( "0" [ "." 0*3DIGIT ] )
//
//	/ ( "1" [ "." 0*3("0") ] )
var qvalue = abnf.Alt("qvalue",
	abnf.Concat(`"0" [ "." 0*3DIGIT ]`,
		abnf.Literal(`"0"`, []byte("0")),
		abnf.Optional(`[ "." 0*3DIGIT ]`,
			abnf.Concat(`"." 0*3DIGIT`, abnf.Literal(`"."`, []byte(".")), abnf.Repeat("0*3DIGIT", 0, 3, core.DIGIT)),
		),
	),
	abnf.Concat(`"1" [ "." 0*3("0") ]`,
		abnf.Literal(`"1"`, []byte("1")),
		abnf.Optional(`[ "." 0*3("0") ]`,
			abnf.Concat(`"." 0*3("0")`, abnf.Literal(`"."`, []byte(".")), abnf.Repeat(`0*3("0")`, 0, 3, abnf.Literal(`"0"`, []byte("0")))),
		),
	),
)

// q-param = ( "q" / "Q" ) "=" qvalue
var qParam = abnf.Concat("q-param", abnf.Literal(`"q="`, []byte("q=")), qvalue)

// weight = OWS ";" OWS q-param
var weight = abnf.Concat("weight", ows, semicolon, ows, qParam)

// ALPHA without "q" and "Q".
var alphaNoQ = abnf.Alt("ALPHA-no-q",
	abnf.Range(`%x41-50`, []byte{0x41}, []byte{0x50}),
	abnf.Range(`%x52-5A`, []byte{0x52}, []byte{0x5A}),
	abnf.Range(`%x61-70`, []byte{0x61}, []byte{0x70}),
	abnf.Range(`%x72-7A`, []byte{0x72}, []byte{0x7A}),
)

// parameter-name = ( tchar-no-q *tchar ) / ( ( "q" / "Q" ) 1*tchar )
//
// The bare name "q" is reserved for the weight, so a "q" pair with anything
// but a valid qvalue fails the whole parse instead of degrading into a
// generic parameter.
var parameterName = abnf.Alt("parameter-name",
	abnf.Concat("tchar-no-q *tchar",
		abnf.Alt("tchar-no-q", tcharSym, core.DIGIT, alphaNoQ),
		abnf.Repeat0Inf("*tchar", tchar),
	),
	abnf.Concat(`( "q" / "Q" ) 1*tchar`,
		abnf.Literal(`"q"`, []byte("q")),
		abnf.Repeat1Inf("1*tchar", tchar),
	),
)

// parameter = parameter-name "=" ( token / quoted-string )
var parameter = abnf.Concat("parameter",
	parameterName,
	abnf.Literal(`"="`, []byte("=")),
	abnf.Alt("parameter-value", token, quotedString),
)

// accept-param = q-param / parameter
//
// The alternatives are disjoint: parameter-name excludes the bare "q",
// so any "q" pair goes through q-param only.
var acceptParam = abnf.AltFirst("accept-param", qParam, parameter)

// media-range = type "/" subtype
//
// The "*/*" and "type/*" forms of RFC 7231 are covered by this rule since
// "*" is a valid token. Wildcard classification is done on the parsed
// values, not in the grammar.
var mediaRange = abnf.Concat("media-range", token, abnf.Literal(`"/"`, []byte("/")), token)

// media-range-full = media-range *( OWS ";" OWS parameter )
//
// The standalone media range form with its parameters but without
// the weight and the extension parameters.
var mediaRangeFull = abnf.Concat("media-range-full",
	mediaRange,
	prefix("media-range-params", semicolon, parameter),
)

// accept-entry = media-range *( OWS ";" OWS accept-param )
var acceptEntry = abnf.Concat("accept-entry",
	mediaRange,
	prefix("accept-params", semicolon, acceptParam),
)

// Accept = #accept-entry
var accept = infix("accept", comma, acceptEntry)

// accept-charset-entry = charset [ weight ]
var acceptCharsetEntry = abnf.Concat("accept-charset-entry",
	token,
	abnf.Optional("accept-charset-weight", weight),
)

// Accept-Charset = 1#accept-charset-entry
var acceptCharset = infix1("accept-charset", comma, acceptCharsetEntry)

// accept-encoding-entry = codings [ weight ]
var acceptEncodingEntry = abnf.Concat("accept-encoding-entry",
	token,
	abnf.Optional("accept-encoding-weight", weight),
)

// Accept-Encoding = #accept-encoding-entry
var acceptEncoding = infix("accept-encoding", comma, acceptEncodingEntry)

// language-range = ( 1*8ALPHA *( "-" 1*8alphanum ) ) / "*"
var languageRange = abnf.Alt("language-range",
	abnf.Concat("language-tag",
		abnf.Repeat("1*8ALPHA", 1, 8, core.ALPHA),
		abnf.Repeat0Inf(`*( "-" 1*8alphanum )`,
			abnf.Concat(`"-" 1*8alphanum`,
				abnf.Literal(`"-"`, []byte("-")),
				abnf.Repeat("1*8alphanum", 1, 8, abnf.Alt("alphanum", core.ALPHA, core.DIGIT)),
			),
		),
	),
	abnf.Literal(`"*"`, []byte("*")),
)

// accept-language-entry = language-range [ weight ]
var acceptLanguageEntry = abnf.Concat("accept-language-entry",
	languageRange,
	abnf.Optional("accept-language-weight", weight),
)

// Accept-Language = #accept-language-entry
var acceptLanguage = infix("accept-language", comma, acceptLanguageEntry)
