package grammar

import (
	"github.com/ghettovoice/abnf"
)

// Conditional request rules from RFC 7232 Sections 2.3 and 3.

// etagc = %x21 / %x23-7E / obs-text
var etagc = abnf.Alt("etagc",
	abnf.Literal(`%x21`, []byte{0x21}),
	abnf.Range(`%x23-7E`, []byte{0x23}, []byte{0x7E}),
	obsText,
)

// opaque-tag = DQUOTE *etagc DQUOTE
var opaqueTag = abnf.Concat("opaque-tag",
	core.DQUOTE,
	abnf.Repeat0Inf("*etagc", etagc),
	core.DQUOTE,
)

// weak = %x57.2F ; "W/", case-sensitive
var weak = abnf.LiteralCS("weak", []byte("W/"))

// entity-tag = [ weak ] opaque-tag
var entityTag = abnf.Concat("entity-tag",
	abnf.Optional("[ weak ]", weak),
	opaqueTag,
)

// entity-tags = 1#entity-tag
var entityTags = infix1("entity-tags", comma, entityTag)

// etags-value = "*" / entity-tags
//
// The wildcard alternative is tried first: a lone "*" can never start a
// valid entity-tag, so the order is unambiguous.
var etagsValue = abnf.AltFirst("etags-value",
	abnf.Concat("etags-any", ows, abnf.Literal(`"*"`, []byte("*")), ows),
	entityTags,
)

// If-Match = "*" / 1#entity-tag
var ifMatch = etagsValue

// If-None-Match = "*" / 1#entity-tag
var ifNoneMatch = etagsValue
