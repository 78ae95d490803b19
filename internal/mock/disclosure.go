package mock

// LineItem is one row of the closing disclosure cost breakdown.
type LineItem struct {
	Label  string
	Amount float64
	Badge  string
}

// CostSection groups line items under a lettered heading.
type CostSection struct {
	Title string
	Items []LineItem
}

// Total sums the section's items.
func (c CostSection) Total() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Amount
	}
	return sum
}

// Disclosure is the closing disclosure summary.
type Disclosure struct {
	FileReference    string
	LoanAmount       float64
	InterestRate     float64
	PrincipalMonthly float64
	EscrowMonthly    float64
	LoanCosts        CostSection
	OtherCosts       CostSection
	DigitalCredit    float64
	CashToClose      float64
}

// TotalClosingCosts is loan costs plus other costs less the digital credit.
func (d Disclosure) TotalClosingCosts() float64 {
	return d.LoanCosts.Total() + d.OtherCosts.Total() - d.DigitalCredit
}

// Homeowner insurance prepaid, only charged when the buyer asked for a quote.
const insurancePrepaid = 6538.48

// ClosingDisclosure returns the disclosure figures. The prepaid insurance
// line reflects the buyer's insurance opt-in.
func ClosingDisclosure(insuranceOptIn bool) Disclosure {
	prepaid := LineItem{Label: "F. Prepaids (Homeowner Insurance)"}
	if insuranceOptIn {
		prepaid.Amount = insurancePrepaid
		prepaid.Badge = "Lemonade Quote"
	}

	return Disclosure{
		FileReference:    RealProperty.ParcelID,
		LoanAmount:       RealProperty.LoanAmount,
		InterestRate:     RealProperty.InterestRate,
		PrincipalMonthly: 5915.38,
		EscrowMonthly:    1050.00,
		LoanCosts: CostSection{
			Title: "Loan Costs (A+B+C)",
			Items: []LineItem{
				{Label: "A. Origination Charges (0.25% Points)", Amount: 2500.00},
				{Label: "B. Services Did Not Shop For", Amount: 902.00},
				{Label: "C. Services Did Shop For (WCT Settlement)", Amount: 4024.00},
			},
		},
		OtherCosts: CostSection{
			Title: "Other Costs (E+F+G+H)",
			Items: []LineItem{
				{Label: "E. Taxes & Gov Recording Fees", Amount: 262.50},
				prepaid,
				{Label: "G. Initial Escrow Payment at Closing", Amount: 10084.80},
				{Label: "H. Other Curative Adjustments", Amount: 2494.13},
			},
		},
		DigitalCredit: 50.00,
		CashToClose:   251578.04,
	}
}

// InstructionRow is one field of the wire instructions.
type InstructionRow struct {
	Label  string
	Value  string
	Masked bool
}

// Display returns the value with masked fields hidden.
func (r InstructionRow) Display() string {
	if !r.Masked {
		return r.Value
	}
	n := len(r.Value)
	if n <= 3 {
		return "•••"
	}
	masked := make([]rune, 0, n)
	for i, ch := range r.Value {
		if i >= n-3 || ch == ' ' {
			masked = append(masked, ch)
			continue
		}
		masked = append(masked, '•')
	}
	return string(masked)
}

// Shown returns the full value when reveal is set, otherwise Display.
func (r InstructionRow) Shown(reveal bool) string {
	if reveal {
		return r.Value
	}
	return r.Display()
}

// WireInstructions are the escrow account details.
var WireInstructions = []InstructionRow{
	{Label: "Receiving Bank", Value: "JPMORGAN CHASE BANK, N.A."},
	{Label: "Account Name", Value: "World Class Title Escrow Account"},
	{Label: "Routing Number (ABA)", Value: "044 000 000", Masked: true},
	{Label: "Account Number", Value: "123456789", Masked: true},
	{Label: "Reference Field", Value: RealProperty.ParcelID},
}

// WireFraudWarning is shown above the wire instructions.
const WireFraudWarning = "Criminals target real estate transactions. Never trust wire instructions sent via email. " +
	"These are the ONLY official instructions for your closing. Always call your Escrow Officer " +
	"at a known number to verify these details before sending funds."

// WireSteps explains how to send the wire.
var WireSteps = []string{
	"Visit your local bank branch in person for the highest level of security.",
	"Provide the transfer details above to your personal banker.",
	"Request a Federal Reference Number once the wire is processed.",
	"Upload your wire confirmation receipt here to trigger instant reconciliation.",
}
