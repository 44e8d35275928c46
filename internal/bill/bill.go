package bill

import "time"

// StatusUnpaid is the status assigned to every extracted bill. Extraction
// never infers payment state from the document text.
const StatusUnpaid = "UNPAID"

// ExtractedBill holds the fields recognized in a bill document's text.
// It is a value constructed once per extraction and not mutated afterward.
// The JSON names are part of the service contract and must not change.
type ExtractedBill struct {
	Amount       float64   `json:"Amount"`
	DueDate      time.Time `json:"DueDate"`
	Status       string    `json:"Status"`
	BillNumber   string    `json:"BillNumber"`
	ConsumerName string    `json:"ConsumerName"`
	Address      string    `json:"Address"`
	BillingMonth string    `json:"BillingMonth"`
}
