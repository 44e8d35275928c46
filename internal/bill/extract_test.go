package bill

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Extractor", func() {
	var (
		text      string
		now       time.Time
		extractor *Extractor
		result    ExtractedBill
	)

	BeforeEach(func() {
		now = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		extractor = NewExtractorWithTimeSource(&mockTimeSource{now: now})
	})

	JustBeforeEach(func() {
		result = extractor.Extract(text)
	})

	When("the text contains no recognizable fields", func() {
		BeforeEach(func() {
			text = ""
		})

		It("should default the amount to zero", func() {
			Expect(result.Amount).To(BeZero())
		})

		It("should default the due date to the extraction time", func() {
			Expect(result.DueDate).To(Equal(now))
		})

		It("should set the status to UNPAID", func() {
			Expect(result.Status).To(Equal(StatusUnpaid))
		})

		It("should leave the string fields empty", func() {
			Expect(result.BillNumber).To(BeEmpty())
			Expect(result.ConsumerName).To(BeEmpty())
			Expect(result.Address).To(BeEmpty())
			Expect(result.BillingMonth).To(BeEmpty())
		})
	})

	When("the text contains a fully labeled bill", func() {
		BeforeEach(func() {
			text = "Total Amount: Rs. 12,450 Due Date: 05-03-2025 Bill Number: BN1029"
		})

		It("should parse the amount with separators stripped", func() {
			Expect(result.Amount).To(Equal(12450.0))
		})

		It("should parse the due date in day-month-year order", func() {
			Expect(result.DueDate).To(Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
		})

		It("should parse the bill number", func() {
			Expect(result.BillNumber).To(Equal("BN1029"))
		})

		It("should set the status to UNPAID", func() {
			Expect(result.Status).To(Equal(StatusUnpaid))
		})
	})

	When("the text has both a labeled amount and a bare currency figure", func() {
		BeforeEach(func() {
			text = "Amount Payable: Rs. 900 some arrears note Rs. 300"
		})

		It("should prefer the labeled amount", func() {
			Expect(result.Amount).To(Equal(900.0))
		})
	})

	When("the text only has an unlabeled currency figure", func() {
		BeforeEach(func() {
			text = "Pay Rs. 1,250 at any branch"
		})

		It("should fall back to the bare currency pattern", func() {
			Expect(result.Amount).To(Equal(1250.0))
		})
	})

	When("the amount uses multiple group separators", func() {
		BeforeEach(func() {
			text = "Total Amount: Rs. 1,234,567"
		})

		It("should parse the full value exactly", func() {
			Expect(result.Amount).To(Equal(1234567.0))
		})
	})

	When("the amount has a fractional part", func() {
		BeforeEach(func() {
			text = "Total Amount: Rs. 1,234.56"
		})

		It("should preserve the fraction", func() {
			Expect(result.Amount).To(Equal(1234.56))
		})
	})

	When("the due date uses slash separators", func() {
		BeforeEach(func() {
			text = "Due Date: 05/03/2025"
		})

		It("should normalize to the same instant as the dash form", func() {
			dashed := extractor.Extract("Due Date: 05-03-2025")
			Expect(result.DueDate).To(Equal(dashed.DueDate))
			Expect(result.DueDate).To(Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
		})
	})

	When("the due date uses the Last Date label", func() {
		BeforeEach(func() {
			text = "Last Date: 15/08/2025"
		})

		It("should parse the date", func() {
			Expect(result.DueDate).To(Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)))
		})
	})

	When("the bill number uses the Bill No label", func() {
		BeforeEach(func() {
			text = "Bill No: X99_2"
		})

		It("should capture the alphanumeric token", func() {
			Expect(result.BillNumber).To(Equal("X99_2"))
		})
	})

	When("the text has both Consumer Name and a bare Name field", func() {
		BeforeEach(func() {
			text = "Consumer Name: Ali Raza\nName: Wrong Co"
		})

		It("should prefer the more specific label", func() {
			Expect(result.ConsumerName).To(Equal("Ali Raza"))
		})
	})

	When("the text only has a bare Name field", func() {
		BeforeEach(func() {
			text = "Name: Ahmed Khan\nAddress: House 12, Phase 5"
		})

		It("should fall back to the bare label", func() {
			Expect(result.ConsumerName).To(Equal("Ahmed Khan"))
		})

		It("should capture the address up to the line break", func() {
			Expect(result.Address).To(Equal("House 12, Phase 5"))
		})
	})

	When("the address uses the Location label", func() {
		BeforeEach(func() {
			text = "Location: Sector B, Street 4 \nBilling Month: March 2025"
		})

		It("should capture and trim the location line", func() {
			Expect(result.Address).To(Equal("Sector B, Street 4"))
		})

		It("should capture the billing month as free text", func() {
			Expect(result.BillingMonth).To(Equal("March 2025"))
		})
	})

	When("the billing month uses the For Month label", func() {
		BeforeEach(func() {
			text = "For Month: FEB-2025"
		})

		It("should capture the label variant", func() {
			Expect(result.BillingMonth).To(Equal("FEB-2025"))
		})
	})

	When("extraction runs twice over the same text", func() {
		BeforeEach(func() {
			text = "Total Amount: Rs. 750 Bill Number: A1 Due Date: 01-01-2026"
		})

		It("should yield identical results", func() {
			Expect(extractor.Extract(text)).To(Equal(result))
		})
	})

	When("the due date digits are malformed", func() {
		BeforeEach(func() {
			// Matches no due-date pattern: the year group needs four digits
			text = "Due Date: 05-03-25"
		})

		It("should fall back to the extraction time", func() {
			Expect(result.DueDate).To(Equal(now))
		})
	})
})
