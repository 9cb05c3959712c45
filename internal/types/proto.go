package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghettovoice/httphead/internal/constraints"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/util"
)

var (
	ProtoHTTP10 = Proto{Name: "HTTP", Version: "1.0"}
	ProtoHTTP11 = Proto{Name: "HTTP", Version: "1.1"}
)

// Proto represents protocol information of a request line (name and version).
type Proto struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ParseProto maps s to one of the known HTTP protocol variants or,
// for any other value, to a custom protocol. It never fails.
func ParseProto[T constraints.Byteseq](s T) Proto {
	switch string(s) {
	case "HTTP/1.0":
		return ProtoHTTP10
	case "HTTP/1.1":
		return ProtoHTTP11
	}
	name, ver, _ := strings.Cut(string(s), "/")
	return Proto{Name: name, Version: ver}
}

// IsHTTP reports whether the protocol is a known HTTP version.
func (p Proto) IsHTTP() bool { return p == ProtoHTTP10 || p == ProtoHTTP11 }

func (p Proto) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "/" + p.Version
}

func (p Proto) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods Proto
		type Proto hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Proto(p))
		return
	}
}

func (p Proto) Equal(val any) bool {
	var other Proto
	switch v := val.(type) {
	case Proto:
		other = v
	case *Proto:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(p.Name, other.Name) && util.EqFold(p.Version, other.Version)
}

func (p Proto) IsValid() bool { return grammar.IsToken(p.Name) && grammar.IsToken(p.Version) }

func (p Proto) IsZero() bool { return p.Name == "" && p.Version == "" }
