package bill

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Field rules: one ordered pattern list per field, tried top to bottom with
// first match winning. Capture group 1 carries the raw field value. The lists
// are compiled once at package init and are read-only afterward, so concurrent
// extractions share them without locking.
var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total Amount[:\s]+Rs\.\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)Amount Payable[:\s]+Rs\.\s*([\d,]+(?:\.\d+)?)`),
		// Unlabeled fallback for documents that omit the label. It can pick up
		// an unrelated monetary figure; pattern order is the only
		// disambiguation the document format allows.
		regexp.MustCompile(`(?i)Rs\.\s*([\d,]+(?:\.\d+)?)`),
	}

	dueDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Due Date[:\s]+(\d{2}[-/]\d{2}[-/]\d{4})`),
		regexp.MustCompile(`(?i)Last Date[:\s]+(\d{2}[-/]\d{2}[-/]\d{4})`),
	}

	billNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Bill Number[:\s]+(\w+)`),
		regexp.MustCompile(`(?i)Bill No[:\s]+(\w+)`),
	}

	// "Consumer Name" must outrank the bare "Name" label so an unrelated
	// Name field cannot shadow the account holder.
	consumerNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Consumer Name[:\s]+([^\n]+)`),
		regexp.MustCompile(`(?i)Name[:\s]+([^\n]+)`),
	}

	addressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Address[:\s]+([^\n]+)`),
		regexp.MustCompile(`(?i)Location[:\s]+([^\n]+)`),
	}

	billingMonthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Billing Month[:\s]+([^\n]+)`),
		regexp.MustCompile(`(?i)Bill Month[:\s]+([^\n]+)`),
		regexp.MustCompile(`(?i)For Month[:\s]+([^\n]+)`),
	}

	dateSeparator = regexp.MustCompile(`[-/]`)
)

// Extractor recognizes bill fields in document text
type Extractor struct {
	timeSource TimeSource
}

// NewExtractor creates a new Extractor with the default time source
func NewExtractor() *Extractor {
	return &Extractor{timeSource: &defaultTimeSource{}}
}

// NewExtractorWithTimeSource creates a new Extractor with a custom time source for testing
func NewExtractorWithTimeSource(timeSource TimeSource) *Extractor {
	return &Extractor{timeSource: timeSource}
}

// Extract recognizes the known bill fields in text. Every field is matched
// independently; a field whose patterns all miss gets its documented default,
// so Extract always returns a fully populated record and never fails, even
// for empty input.
func (e *Extractor) Extract(text string) ExtractedBill {
	// One instant per call: the due-date default and any downstream
	// "days until due" math must agree across repeated reads of the result.
	now := e.timeSource.Now()

	return ExtractedBill{
		Amount:       extractAmount(text),
		DueDate:      extractDueDate(text, now),
		Status:       StatusUnpaid,
		BillNumber:   firstMatch(billNumberPatterns, text),
		ConsumerName: firstMatch(consumerNamePatterns, text),
		Address:      firstMatch(addressPatterns, text),
		BillingMonth: firstMatch(billingMonthPatterns, text),
	}
}

// firstMatch returns the trimmed first capture of the first pattern that
// matches, or "" when none do.
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractAmount parses a labeled total, falling back to any currency-marked
// number. Group separators are stripped before conversion.
func extractAmount(text string) float64 {
	raw := firstMatch(amountPatterns, text)
	if raw == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0
	}
	return amount
}

// extractDueDate parses a dd-mm-yyyy or dd/mm/yyyy date following a due-date
// label. Day-month-year order is fixed regardless of separator. When no
// pattern matches, the extraction-time instant is returned so consumers that
// compute days-until-due never see a zero date.
func extractDueDate(text string, now time.Time) time.Time {
	raw := firstMatch(dueDatePatterns, text)
	if raw == "" {
		return now
	}

	parts := dateSeparator.Split(raw, -1)
	if len(parts) != 3 {
		return now
	}

	day, dayErr := strconv.Atoi(parts[0])
	month, monthErr := strconv.Atoi(parts[1])
	year, yearErr := strconv.Atoi(parts[2])
	if dayErr != nil || monthErr != nil || yearErr != nil {
		return now
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
