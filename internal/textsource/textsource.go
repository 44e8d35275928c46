package textsource

import "errors"

// ErrUnreadable reports that document bytes could not be parsed as a
// supported document format. Wrapped errors carry the underlying detail.
var ErrUnreadable = errors.New("document unreadable")

// Source defines the interface for turning an opaque document byte stream
// into plain text
type Source interface {
	// FirstPageText returns the concatenated text of the document's first page
	FirstPageText(data []byte) (string, error)
}
