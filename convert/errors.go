package convert

import "strings"

// Kind classifies a conversion failure.
type Kind uint8

const (
	KindColor  Kind = iota + 1 // invalid replacement color
	KindRead                   // input missing or unreadable
	KindWrite                  // output directory or file not writable
	KindRender                 // markup rejected by the rasterizer or encoder
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error is returned by Convert.
type Error struct {
	Kind Kind
	Path string // file involved, if any
	Err  error
}

// Error prefixes the underlying message with Path,
// unless it already names it.
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Path == "" || strings.Contains(msg, e.Path) {
		return msg
	}
	return e.Path + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }
