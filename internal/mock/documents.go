package mock

// DocumentStatus is the review state of a vault document.
type DocumentStatus string

const (
	DocInReview     DocumentStatus = "In Review"
	DocActionNeeded DocumentStatus = "Action Needed"
	DocComplete     DocumentStatus = "Complete"
)

// Document is one entry in the closing package vault.
type Document struct {
	Name    string
	Ref     string
	Kind    string // PDF, FORM, UPLOAD
	Size    string
	Status  DocumentStatus
	Urgent  bool
	Missing bool
	Note    string
}

// Action returns the label of the button shown next to the document.
func (d Document) Action() string {
	switch {
	case d.Urgent:
		return "Complete"
	case d.Missing:
		return "Upload Now"
	default:
		return "View"
	}
}

// Documents is the closing package as shown during the Documents phase.
var Documents = []Document{
	{Name: "Executed Purchase Contract", Ref: "EPC-2510", Kind: "PDF", Size: "2.4 MB", Status: DocComplete},
	{Name: "Signed Addendum dated 2/12/26", Ref: "ADD-01", Kind: "PDF", Size: "1.1 MB", Status: DocComplete},
	{Name: "Title Commitment", Ref: "WCT-COMMIT", Kind: "PDF", Size: "1.8 MB", Status: DocInReview},
	{Name: "Lender Closing Instructions", Ref: "L-9372", Kind: "PDF", Size: "850 KB", Status: DocInReview},
	{Name: "Buyer Information Sheet", Ref: "REQUIRED", Kind: "FORM", Status: DocActionNeeded, Urgent: true},
	{Name: "Insurance Dec Page", Ref: "MISSING", Kind: "UPLOAD", Status: DocActionNeeded, Missing: true,
		Note: "Need to upload or use our partner program below"},
}

// QuoteOffer is one of the optional marketplace services offered next to the vault.
type QuoteOffer struct {
	Title       string
	Partner     string
	Description string
	ToggleLabel string
}

// InsuranceQuote and MortgageQuote back the two opt-in toggles.
var (
	InsuranceQuote = QuoteOffer{
		Title:       "Homeowner Insurance",
		Partner:     "Lemonade Partner",
		Description: `Instant quotes and digital binding. Solve the "Missing Dec Page" in 90 seconds.`,
		ToggleLabel: "Get Quote",
	}
	MortgageQuote = QuoteOffer{
		Title:       "Mortgage Competition",
		Partner:     "Marketplace",
		Description: "Lenders (including " + RealProperty.Lender + ") compete for your business. Non-binding pre-approval available.",
		ToggleLabel: "Invite Bids",
	}
)

// TitleIssueStatus tracks a curative item.
type TitleIssueStatus string

const (
	IssuePending  TitleIssueStatus = "Pending"
	IssueResolved TitleIssueStatus = "Resolved"
)

// TitleIssue is a finding from the title examination.
type TitleIssue struct {
	ID          string
	Description string
	Party       string
	Status      TitleIssueStatus
}

// ExamHistory lists the verified records from the title search.
var ExamHistory = []string{
	"Franklin County Auditor Records Matched",
	"Prior Lien Release Verified (Chase Bank)",
}

// ExaminerNote is the easement remark shown on the search phase.
const ExaminerNote = "Examiner Note: A standard utility easement per Plat Vol 45, Pg 112 was noted. " +
	"This is typical for Powell residential plots and does not affect marketability of title."

// TitleIssues are the open and closed curative items.
var TitleIssues = []TitleIssue{
	{ID: "TI-101", Description: "Utility easement, Plat Vol 45 Pg 112", Party: "Examiner", Status: IssueResolved},
	{ID: "TI-102", Description: "Prior mortgage release", Party: "Chase Bank", Status: IssueResolved},
	{ID: "TI-103", Description: "HOA status letter", Party: "Wedgewood HOA", Status: IssuePending},
}

// CurativeItem is a row in the clearing-phase checklist.
type CurativeItem struct {
	Name   string
	Status string
}

// CurativeItems are shown during the Clearing phase.
var CurativeItems = []CurativeItem{
	{Name: "County Auditor Transfer Fee", Status: "Cleared"},
	{Name: "HOA Status Letter (Wedgewood)", Status: "Finalizing"},
	{Name: "Escrow Holdback Agreement", Status: "In Review"},
}

// SigningLocation is an option on the Schedule phase.
type SigningLocation struct {
	Name        string
	Description string
	Available   bool
}

// SigningLocations lists the signing environments.
var SigningLocations = []SigningLocation{
	{Name: "In-Office (Westerville)", Description: "5040 Pine Creek Drive, Westerville, OH 43081. Full notary support onsite.", Available: true},
	{Name: "RON (Digital Signing)", Description: "Remote Online Notarization. Currently restricted by Lender guidelines.", Available: false},
}
