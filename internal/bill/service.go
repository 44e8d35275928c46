package bill

import (
	"fmt"
	"log/slog"

	"github.com/utilparse/bill-parser/internal/textsource"
)

// Service parses uploaded bill documents
type Service struct {
	source    textsource.Source
	extractor *Extractor
}

// NewService creates a new Service with the default extractor
func NewService(source textsource.Source) *Service {
	return &Service{
		source:    source,
		extractor: NewExtractor(),
	}
}

// NewServiceWithExtractor creates a new Service with a custom extractor for testing
func NewServiceWithExtractor(source textsource.Source, extractor *Extractor) *Service {
	return &Service{
		source:    source,
		extractor: extractor,
	}
}

// ParseBill converts the document bytes to text and extracts the bill fields.
// An unreadable document is fatal to the request; once text is available,
// extraction always succeeds and unmatched fields fall back to their defaults.
func (s *Service) ParseBill(data []byte) (*ExtractedBill, error) {
	text, err := s.source.FirstPageText(data)
	if err != nil {
		slog.Error("Failed to read document text",
			"document_size", len(data),
			"error", err,
		)
		return nil, fmt.Errorf("reading document text: %w", err)
	}

	bill := s.extractor.Extract(text)
	return &bill, nil
}
