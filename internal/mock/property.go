// Package mock holds the static records the portal displays: the property
// under contract, the buyer's agent, the document vault, disclosure figures
// and the copy for each phase. Nothing here is fetched or persisted.
package mock

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Property is the parcel being purchased.
type Property struct {
	Address      string
	CityStateZip string
	ParcelID     string
	County       string
	BuyerName    string
	SalePrice    float64
	LoanAmount   float64
	InterestRate float64
	Lender       string
	ClosingDate  string
}

// FullAddress joins the street and city lines.
func (p Property) FullAddress() string {
	return p.Address + " | " + p.CityStateZip
}

// Agent is the buyer's real-estate agent shown in the sidebar.
type Agent struct {
	Name      string
	Brokerage string
	Phone     string
	Email     string
}

// RealProperty is the demo transaction.
var RealProperty = Property{
	Address:      "8421 Wedgewood Ridge Ct",
	CityStateZip: "Powell, OH 43065",
	ParcelID:     "319-241-07-016-000",
	County:       "Delaware County",
	BuyerName:    "Jordan & Casey Whitfield",
	SalePrice:    1_150_000,
	LoanAmount:   1_000_000,
	InterestRate: 6.125,
	Lender:       "Union Savings Bank",
	ClosingDate:  "March 27, 2026",
}

// BuyerAgent is the agent attached to the demo transaction.
var BuyerAgent = Agent{
	Name:      "Dana Kessler",
	Brokerage: "Keller Williams Capital Partners",
	Phone:     "(614) 555-0142",
	Email:     "dana.kessler@kwcapital.example",
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount as "$1,234.56". Negative amounts render as "-$50.00".
func FormatUSD(amount float64) string {
	if amount < 0 {
		return "-" + usd.Sprintf("$%.2f", -amount)
	}
	return usd.Sprintf("$%.2f", amount)
}

// FormatWholeUSD renders an amount without cents, as "$1,150,000".
func FormatWholeUSD(amount float64) string {
	return usd.Sprintf("$%.0f", amount)
}
