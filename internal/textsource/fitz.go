package textsource

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Fitz implements the Source interface using the MuPDF fitz bindings
type Fitz struct{}

// NewFitz creates a new Fitz text source
func NewFitz() *Fitz {
	return &Fitz{}
}

// FirstPageText extracts the text layer of the document's first page.
// Bills are single-page documents; later pages carry tariff boilerplate.
func (f *Fitz) FirstPageText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: opening document: %v", ErrUnreadable, err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return "", fmt.Errorf("%w: document has no pages", ErrUnreadable)
	}

	text, err := doc.Text(0)
	if err != nil {
		return "", fmt.Errorf("%w: reading first page: %v", ErrUnreadable, err)
	}

	return text, nil
}
