package errcode

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"
	Unsupported   Code = "unsupported"

	// Configuration (fatal at startup).
	ResourceTaken Code = "resource_taken"
	AlreadyBound  Code = "already_bound"
	UnknownPin    Code = "unknown_pin"

	// Transport faults (fatal).
	Parity    Code = "parity"
	Framing   Code = "framing"
	Overrun   Code = "overrun"
	Transport Code = "transport"

	// Line buffering (recoverable).
	BufferFull Code = "buffer_full"

	Error Code = "error" // generic fallback
)

// Class groups codes by how the firmware reacts to them.
type Class uint8

const (
	ClassNone Class = iota
	ClassConfig
	ClassTransport
	ClassOverflow
	ClassOther
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassConfig:
		return "config"
	case ClassTransport:
		return "transport"
	case ClassOverflow:
		return "overflow"
	default:
		return "other"
	}
}

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap attaches an operation and code to a cause. A nil cause yields nil.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	msg := ""
	if _, ok := err.(Code); !ok {
		msg = err.Error()
	}
	return &E{C: c, Op: op, Msg: msg, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// ClassOf maps an error to its handling class.
func ClassOf(err error) Class {
	switch Of(err) {
	case OK:
		return ClassNone
	case ResourceTaken, AlreadyBound, UnknownPin, InvalidParams:
		return ClassConfig
	case Parity, Framing, Overrun, Transport:
		return ClassTransport
	case BufferFull:
		return ClassOverflow
	default:
		return ClassOther
	}
}

// IsFatal reports whether err must stop the firmware. Only overflow is
// handled locally; everything else propagates to the top level.
func IsFatal(err error) bool {
	c := ClassOf(err)
	return c != ClassNone && c != ClassOverflow
}

// MapDriverErr maps low-level driver errors to a Code.
// Codes pass through unchanged; anything else is a generic transport fault.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	switch c := Of(err); c {
	case Parity, Framing, Overrun:
		return c
	}
	return Transport
}
