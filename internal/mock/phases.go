package mock

import (
	"fmt"

	"github.com/wctsmart/closingportal/internal/portal"
)

// Expectation is the "what to expect" box under each phase.
type Expectation struct {
	Title       string
	EstTime     string
	Description string
}

// PhaseCopy is the static text for one phase of the buyer flow.
type PhaseCopy struct {
	Title       string
	Subtitle    string
	NextLabel   string
	ShowBack    bool
	Expectation Expectation
}

var phaseCopy = map[portal.Phase]PhaseCopy{
	portal.PhaseStarted: {
		Title:     "Transaction Started",
		Subtitle:  fmt.Sprintf("We are processing File #%s for the purchase of %s.", RealProperty.ParcelID, RealProperty.Address),
		NextLabel: "Confirm Details",
		Expectation: Expectation{
			Title:   "File Setup & Compliance",
			EstTime: "Immediate",
			Description: "Our compliance team is currently mapping your purchase contract to local statutory requirements, " +
				"ensuring every contingency date is tracked and secured.",
		},
	},
	portal.PhaseIdentity: {
		Title:     "Verify Identity",
		Subtitle:  fmt.Sprintf("Secure Biometric verification required for %s.", RealProperty.BuyerName),
		NextLabel: "Start Verification",
		ShowBack:  true,
		Expectation: Expectation{
			Title:   "Identity Shielding",
			EstTime: "5 Mins",
			Description: "We use government-grade biometric matching to ensure the person signing is exactly who they claim to be. " +
				"This eliminates 99.9% of identity-based wire fraud risks.",
		},
	},
	portal.PhaseDocuments: {
		Title:     "Document Collection",
		Subtitle:  "Please review your current closing package. Securely view, download, or complete necessary filings below.",
		NextLabel: "Review Package",
		ShowBack:  true,
		Expectation: Expectation{
			Title:   "Digital Custody & Vault",
			EstTime: "Continuous",
			Description: "Your documents are stored in an AES-256 encrypted vault. We are meticulously auditing each signature " +
				"to ensure your loan is legally fundable and state-compliant.",
		},
	},
	portal.PhaseSearch: {
		Title:     "Digital Title Examination",
		Subtitle:  "Our examiners have verified a clear path to ownership by reviewing 40+ years of public records.",
		NextLabel: "Confirm Search",
		ShowBack:  true,
		Expectation: Expectation{
			Title:   "The 40-Year Legal Exam",
			EstTime: "48-72 Hours",
			Description: "Our examiners search the land's history for 'ghost liens' and ancient easements. We don't just verify names; " +
				"we ensure the physical parcel is free of hidden claims before you own it.",
		},
	},
	portal.PhaseClearing: {
		Title:     "Curative Phase",
		Subtitle:  "We are finalizing the payoff and tax certificates to ensure a clean transfer.",
		NextLabel: "Continue",
		ShowBack:  true,
		Expectation: Expectation{
			Title:   "Financial Sovereignty",
			EstTime: "3-5 Days",
			Description: "We are coordinating with current lienholders to ensure their debts are paid in full. " +
				"This guarantees you are handed a 'free and clear' title the moment your deed is recorded.",
		},
	},
	portal.PhaseSchedule: {
		Title:     "Signing Coordinator",
		Subtitle:  fmt.Sprintf("Closing is officially targeted for %s. Please select your preferred signing environment.", RealProperty.ClosingDate),
		NextLabel: "Schedule Time",
		ShowBack:  true,
		Expectation: Expectation{
			Title:   "Legal Witnessing & Execution",
			EstTime: "60 Mins",
			Description: "A state-certified notary will witness your wet-ink signatures. This ceremony provides the final layer " +
				"of legal validity required for a secure property transfer in the State of Ohio.",
		},
	},
	portal.PhaseSummary: {
		Title:     "Closing Disclosure",
		Subtitle:  "Review every figure before you acknowledge and sign.",
		NextLabel: "Acknowledge & Sign",
		ShowBack:  true,
		Expectation: Expectation{
			Title:   "The Final Financial Audit",
			EstTime: "24 Hours",
			Description: "Every penny is accounted for. This disclosure is the final result of a multi-party audit between WCT, " +
				"your lender, and the seller's representatives to ensure 100% precision.",
		},
	},
	portal.PhaseClosed: {
		Title:     "Ownership Verified. Protection Activated.",
		Subtitle:  fmt.Sprintf("Your property records for %s are now professionally monitored and continuously protected by WCT Smart ONE.", RealProperty.Address),
		NextLabel: "Enter Smart ONE Dashboard",
		ShowBack:  true,
	},
}

// CopyFor returns the text for phase p. Unknown phases return the zero value.
func CopyFor(p portal.Phase) PhaseCopy {
	return phaseCopy[p]
}

// Milestone is one row of the agent transparency timeline.
type Milestone struct {
	Phase  portal.Phase
	Label  string
	Detail string
}

// AgentMilestones describe each phase from the agent's point of view.
var AgentMilestones = []Milestone{
	{portal.PhaseStarted, "File opened", "Contract received and compliance mapping started."},
	{portal.PhaseIdentity, "Buyer identity", "Biometric verification against county auditor records."},
	{portal.PhaseDocuments, "Closing package", "Vault audit of contract, addendum, commitment and lender instructions."},
	{portal.PhaseSearch, "Title search", "40-year examination, easements and prior liens."},
	{portal.PhaseClearing, "Curative", "Payoffs, HOA letter and transfer fees."},
	{portal.PhaseSchedule, "Signing", "Notary and signing environment confirmed."},
	{portal.PhaseSummary, "Disclosure", "Final figures and wire instructions delivered."},
	{portal.PhaseClosed, "Recorded", "Deed recorded and title monitoring activated."},
}

// MilestoneState is a milestone's position relative to the current phase.
type MilestoneState int

const (
	MilestoneUpcoming MilestoneState = iota
	MilestoneCurrent
	MilestoneDone
)

// StateOf places milestone m relative to the current phase. Once the session
// has entered the dashboard every milestone is done.
func (m Milestone) StateOf(current portal.Phase, inDashboard bool) MilestoneState {
	switch {
	case inDashboard || m.Phase.Before(current):
		return MilestoneDone
	case m.Phase == current:
		return MilestoneCurrent
	default:
		return MilestoneUpcoming
	}
}

// Service is a post-closing Smart ONE offering.
type Service struct {
	Title       string
	Description string
}

// DashboardServices are shown on the closing screen and in the dashboard.
var DashboardServices = []Service{
	{"Title Shield", "24/7 public record surveillance for unauthorized lien activity."},
	{"Move-In Coordination", "Curated activation of essential utility and transition services."},
	{"Equity Review", "Ongoing professional audit of your property value and capital position."},
}

// UrgentDaysThreshold marks the dashboard banner urgent at or below this many days.
const UrgentDaysThreshold = 15
