package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphead/internal/errorutil"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func ParseAccept[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := accept([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseAcceptEntry[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := acceptEntry([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseMediaRange[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := mediaRangeFull([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseAcceptCharset[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := acceptCharset([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseAcceptEncoding[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := acceptEncoding([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseAcceptLanguage[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := acceptLanguage([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseQValue[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := qvalue([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseEntityTag[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := entityTag([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseIfMatch[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := ifMatch([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

func ParseIfNoneMatch[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := ifNoneMatch([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}
