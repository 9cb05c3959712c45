package header

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/grammar"
)

// QValue represents a relative quality weight from RFC 7231 Section 5.3.1.
// The value ranges from 0 to 1 with at most three digits after the decimal point.
type QValue float64

// Q returns a pointer to q, handy for filling optional weight fields.
func Q(q QValue) *QValue { return &q }

// ParseQValue parses a qvalue from the given input s (string or []byte).
func ParseQValue[T ~string | ~[]byte](s T) (QValue, error) {
	node, err := grammar.ParseQValue(s)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	q, err := strconv.ParseFloat(node.String(), 64)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return QValue(q), nil
}

func (q QValue) String() string {
	s := strconv.FormatFloat(float64(q), 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func (q QValue) IsValid() bool {
	if q < 0 || q > 1 {
		return false
	}
	// No more than three digits of precision.
	return QValue(float64(int64(float64(q)*1000+0.5))/1000) == q
}

func (q QValue) Equal(val any) bool {
	var other QValue
	switch v := val.(type) {
	case QValue:
		other = v
	case *QValue:
		if v == nil {
			return false
		}
		other = *v
	case float64:
		other = QValue(v)
	default:
		return false
	}
	return q == other
}

// qvalEqual compares two optional weights treating a missing weight
// as the default value 1 (RFC 7231 Section 5.3.1).
func qvalEqual(q1, q2 *QValue) bool {
	return qvalOrDefault(q1) == qvalOrDefault(q2)
}

func qvalOrDefault(q *QValue) QValue {
	if q == nil {
		return 1
	}
	return *q
}

func cloneQVal(q *QValue) *QValue {
	if q == nil {
		return nil
	}
	q2 := *q
	return &q2
}

func buildFromQParamNode(node *abnf.Node) *QValue {
	q, err := strconv.ParseFloat(grammar.MustGetNode(node, "qvalue").String(), 64)
	if err != nil {
		return nil
	}
	return Q(QValue(q))
}
