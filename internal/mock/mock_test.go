package mock

import (
	"strings"
	"testing"

	"github.com/wctsmart/closingportal/internal/portal"
)

func TestCopyForEveryPhase(t *testing.T) {
	for _, p := range portal.Phases() {
		c := CopyFor(p)
		if c.Title == "" || c.NextLabel == "" {
			t.Errorf("%v: missing title or next label: %+v", p, c)
		}
	}
	if CopyFor(portal.PhaseStarted).ShowBack {
		t.Error("first phase should not show a back button")
	}
	if got := CopyFor(portal.PhaseClosed).NextLabel; got != "Enter Smart ONE Dashboard" {
		t.Errorf("closed next label = %q", got)
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6538.48, "$6,538.48"},
		{0, "$0.00"},
		{-50, "-$50.00"},
		{251578.04, "$251,578.04"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatWholeUSD(1_150_000); got != "$1,150,000" {
		t.Errorf("FormatWholeUSD = %q", got)
	}
}

func TestClosingDisclosureInsuranceOptIn(t *testing.T) {
	without := ClosingDisclosure(false)
	with := ClosingDisclosure(true)

	if got := without.OtherCosts.Items[1].Amount; got != 0 {
		t.Errorf("prepaid without opt-in = %v, want 0", got)
	}
	if got := with.OtherCosts.Items[1].Amount; got != 6538.48 {
		t.Errorf("prepaid with opt-in = %v, want 6538.48", got)
	}
	if with.OtherCosts.Items[1].Badge == "" {
		t.Error("opt-in prepaid line should carry the quote badge")
	}
	if got := FormatUSD(with.LoanCosts.Total()); got != "$7,426.00" {
		t.Errorf("loan costs = %s, want $7,426.00", got)
	}
	if got := FormatUSD(with.TotalClosingCosts()); got != "$26,755.91" {
		t.Errorf("total closing costs = %s, want $26,755.91", got)
	}
}

func TestInstructionRowDisplay(t *testing.T) {
	row := InstructionRow{Value: "123456789", Masked: true}
	if got := row.Display(); got != "••••••789" {
		t.Errorf("Display = %q", got)
	}
	plain := InstructionRow{Value: "JPMORGAN"}
	if got := plain.Display(); got != "JPMORGAN" {
		t.Errorf("Display = %q", got)
	}
}

func TestDocumentAction(t *testing.T) {
	want := map[string]string{
		"Executed Purchase Contract": "View",
		"Buyer Information Sheet":    "Complete",
		"Insurance Dec Page":         "Upload Now",
	}
	for _, d := range Documents {
		if label, ok := want[d.Name]; ok && d.Action() != label {
			t.Errorf("%s action = %q, want %q", d.Name, d.Action(), label)
		}
	}
}

func TestMilestoneState(t *testing.T) {
	m := AgentMilestones[2] // documents
	if got := m.StateOf(portal.PhaseStarted, false); got != MilestoneUpcoming {
		t.Errorf("state = %v, want upcoming", got)
	}
	if got := m.StateOf(portal.PhaseDocuments, false); got != MilestoneCurrent {
		t.Errorf("state = %v, want current", got)
	}
	if got := m.StateOf(portal.PhaseSummary, false); got != MilestoneDone {
		t.Errorf("state = %v, want done", got)
	}
	last := AgentMilestones[len(AgentMilestones)-1]
	if got := last.StateOf(portal.PhaseClosed, true); got != MilestoneDone {
		t.Errorf("closed milestone in dashboard = %v, want done", got)
	}
}

func TestAnswerFor(t *testing.T) {
	if got := AnswerFor("closing date"); !strings.Contains(got, RealProperty.ClosingDate) {
		t.Errorf("AnswerFor(closing date) = %q", got)
	}
	if got := AnswerFor("Remote"); !strings.Contains(got, "notarization") {
		t.Errorf("AnswerFor(Remote) = %q", got)
	}

	tests := []struct {
		question string
		want     string
	}{
		{"wire", "secure wire portal"},
		{"how do I wire money", "secure wire portal"},
		{"when do I close?", RealProperty.ClosingDate},
		{"what is my cash to close", "final cash to close"},
		{"who's my agent", BuyerAgent.Phone},
		{"is signing remote?", "notarization"},
		{"What documents are missing?", "Buyer Information Sheet"},
		{"what does title insurance cover", "claims on the property"},
	}
	for _, tt := range tests {
		if got := AnswerFor(tt.question); !strings.Contains(got, tt.want) {
			t.Errorf("AnswerFor(%q) = %q, want it to mention %q", tt.question, got, tt.want)
		}
	}

	if got := AnswerFor("zzzz"); got != DefaultChatAnswer {
		t.Errorf("AnswerFor(zzzz) = %q, want default", got)
	}
	if got := AnswerFor("   "); got != DefaultChatAnswer {
		t.Errorf("AnswerFor(blank) = %q, want default", got)
	}
}
