// Package views provides TUI view components for the closing portal.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
)

// WirePanel is the view-local state of the secure wire portal on the
// disclosure step.
type WirePanel struct {
	Open   bool
	Reveal bool // show masked account fields in full
}

// PhaseContent renders the body of the buyer flow for the session's phase,
// toned to its effective experience level.
func PhaseContent(st tui.Styles, s portal.Session, width int, wire WirePanel) string {
	level := portal.EffectiveExperienceLevel(s)
	pc := mock.CopyFor(s.Phase)

	var b strings.Builder
	b.WriteString(phaseHeader(st, s.Phase, pc, width))
	b.WriteString("\n\n")

	switch s.Phase {
	case portal.PhaseStarted:
		b.WriteString(renderStarted(st))
	case portal.PhaseIdentity:
		b.WriteString(renderIdentity(st))
	case portal.PhaseDocuments:
		b.WriteString(renderDocuments(st, s, level))
	case portal.PhaseSearch:
		b.WriteString(renderSearch(st, level))
	case portal.PhaseClearing:
		b.WriteString(renderClearing(level))
	case portal.PhaseSchedule:
		b.WriteString(renderSchedule(st))
	case portal.PhaseSummary:
		b.WriteString(renderSummary(st, s, level, wire))
	case portal.PhaseClosed:
		b.WriteString(renderClosed(st))
	}

	if level != portal.ExperienceSimple && pc.Expectation.Title != "" {
		b.WriteString("\n")
		b.WriteString(renderExpectation(st, pc.Expectation, width))
	}

	b.WriteString("\n\n")
	b.WriteString(navActions(st, pc))
	return b.String()
}

func phaseHeader(st tui.Styles, p portal.Phase, pc mock.PhaseCopy, width int) string {
	bar := progress.New(
		progress.WithSolidFill(st.Brand.PrimaryColor),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)
	step := fmt.Sprintf("Step %d of %d", p.StepNumber(), portal.PhaseCount)
	top := lipgloss.JoinHorizontal(lipgloss.Center,
		st.Badge.Render(step), " ",
		bar.ViewAs(float64(p.StepNumber())/float64(portal.PhaseCount)),
	)

	wrap := lipgloss.NewStyle().Width(max(width, 20))
	return strings.Join([]string{
		top,
		"",
		st.Title.Render(strings.ToUpper(pc.Title)),
		wrap.Inherit(st.Subtitle).Render(pc.Subtitle),
	}, "\n")
}

func renderExpectation(st tui.Styles, e mock.Expectation, width int) string {
	head := fmt.Sprintf("RADICAL TRANSPARENCY: WHAT TO EXPECT  ·  Est. %s", e.EstTime)
	body := tui.BoldStyle.Render(strings.ToUpper(e.Title)) + "\n" + e.Description
	return st.Expectation.Width(max(width-2, 20)).Render(head + "\n" + body)
}

func navActions(st tui.Styles, pc mock.PhaseCopy) string {
	var parts []string
	if pc.ShowBack {
		parts = append(parts, st.Button("← Back", false), "  ")
	}
	parts = append(parts, st.Button(pc.NextLabel+" →", true))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func renderStarted(st tui.Styles) string {
	p := mock.RealProperty
	return fmt.Sprintf("%s  %s\n%s  %s",
		tui.DimStyle.Render("Sale Price"), st.Title.Render(mock.FormatWholeUSD(p.SalePrice)),
		tui.DimStyle.Render("Lender    "), st.Title.Render(p.Lender),
	)
}

func renderIdentity(st tui.Styles) string {
	return st.Panel.Render(
		tui.BoldStyle.Render("Advanced Security Protocol") + "\n" +
			tui.DimStyle.Render("Encrypted identity matching with "+mock.RealProperty.County+" Auditor records."),
	)
}

func renderDocuments(st tui.Styles, s portal.Session, level portal.ExperienceLevel) string {
	var b strings.Builder
	b.WriteString(tui.DimStyle.Render("DOCUMENT VAULT"))
	b.WriteString("\n")
	for _, d := range mock.Documents {
		icon := tui.IconDone
		if d.Urgent || d.Missing {
			icon = tui.IconAttn
		}
		meta := "ID: " + d.Ref
		if d.Size != "" {
			meta += " • " + d.Size
		}
		line := fmt.Sprintf("%s %-6s %-32s %s", icon, d.Kind, d.Name, st.Button(d.Action(), false))
		b.WriteString(line)
		b.WriteString("\n")
		if level != portal.ExperienceSimple {
			b.WriteString("         " + tui.DimStyle.Render(meta))
			if level == portal.ExperienceComplete {
				b.WriteString(tui.DimStyle.Render(" • " + string(d.Status)))
			}
			b.WriteString("\n")
		}
		if d.Note != "" {
			b.WriteString("         " + tui.ErrorStyle.Render(d.Note) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.Title.Render("WCT SMART QUOTE SERVICES") + "  " + st.Badge.Render("Free Service"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Complimentary marketplace access. Compare rates and save on your new property."))
	b.WriteString("\n\n")
	b.WriteString(quoteLine(mock.InsuranceQuote, s.InsuranceOptIn, "i"))
	b.WriteString("\n")
	b.WriteString(quoteLine(mock.MortgageQuote, s.MortgageOptIn, "m"))
	return b.String()
}

func quoteLine(q mock.QuoteOffer, on bool, key string) string {
	box := tui.IconCheckOff
	if on {
		box = tui.IconCheckOn
	}
	return fmt.Sprintf("%s %s %s  %s\n    %s",
		box, tui.BoldStyle.Render(q.Title), tui.DimStyle.Render("("+q.Partner+")"),
		tui.DimStyle.Render(fmt.Sprintf("[%s] %s", key, q.ToggleLabel)),
		q.Description,
	)
}

func renderSearch(st tui.Styles, level portal.ExperienceLevel) string {
	var b strings.Builder
	b.WriteString(tui.DimStyle.Render("EXAM HISTORY"))
	b.WriteString("\n")
	for _, h := range mock.ExamHistory {
		b.WriteString(tui.IconDone + " " + h + "\n")
	}
	if level != portal.ExperienceSimple {
		b.WriteString("\n")
		b.WriteString(st.Panel.Render(lipgloss.NewStyle().Italic(true).Render(mock.ExaminerNote)))
		b.WriteString("\n")
	}
	if level == portal.ExperienceComplete {
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("TITLE FINDINGS"))
		b.WriteString("\n")
		for _, issue := range mock.TitleIssues {
			icon := tui.IconPending
			if issue.Status == mock.IssueResolved {
				icon = tui.IconDone
			}
			b.WriteString(fmt.Sprintf("%s %-7s %-40s %s\n", icon, issue.ID, issue.Description, tui.DimStyle.Render(issue.Party)))
		}
	}
	return b.String()
}

func renderClearing(level portal.ExperienceLevel) string {
	var b strings.Builder
	for _, item := range mock.CurativeItems {
		status := tui.WarningStyle.Render(item.Status)
		if item.Status == "Cleared" {
			status = tui.SuccessStyle.Render(item.Status)
		}
		b.WriteString(fmt.Sprintf("%-36s %s\n", item.Name, status))
	}
	if level == portal.ExperienceComplete {
		b.WriteString("\n")
		for _, issue := range mock.TitleIssues {
			if issue.Status == mock.IssuePending {
				b.WriteString(tui.WarningStyle.Render(fmt.Sprintf("Open item %s: %s (%s)", issue.ID, issue.Description, issue.Party)))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func renderSchedule(st tui.Styles) string {
	var cards []string
	for _, loc := range mock.SigningLocations {
		body := tui.BoldStyle.Render(loc.Name) + "\n" + lipgloss.NewStyle().Width(34).Render(loc.Description)
		if !loc.Available {
			body += "\n" + tui.WarningStyle.Render("Coming Soon")
		}
		cards = append(cards, st.Panel.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderSummary(st tui.Styles, s portal.Session, level portal.ExperienceLevel, wire WirePanel) string {
	d := mock.ClosingDisclosure(s.InsuranceOptIn)

	var b strings.Builder
	b.WriteString(tui.DimStyle.Render("Digital File Reference ") + tui.BoldStyle.Render(d.FileReference))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s    %s %.3f%%\n",
		tui.DimStyle.Render("Loan Amount"), st.Title.Render(mock.FormatWholeUSD(d.LoanAmount)),
		tui.DimStyle.Render("Interest Rate"), d.InterestRate))
	b.WriteString(fmt.Sprintf("%s %s/mo    %s %s/mo\n\n",
		tui.DimStyle.Render("Principal & Interest"), mock.FormatUSD(d.PrincipalMonthly),
		tui.DimStyle.Render("Estimated Escrow"), mock.FormatUSD(d.EscrowMonthly)))

	b.WriteString(fmt.Sprintf("%s %s    %s %s\n",
		tui.DimStyle.Render("Total Closing Costs"), st.Title.Render(mock.FormatUSD(d.TotalClosingCosts())),
		tui.DimStyle.Render("Final Cash to Close"), st.Title.Render(mock.FormatUSD(d.CashToClose))))
	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("Includes %s Digital Credit", mock.FormatUSD(d.DigitalCredit))))
	b.WriteString("\n\n")

	if level != portal.ExperienceSimple {
		b.WriteString(costTable(d, level == portal.ExperienceComplete))
		b.WriteString("\n\n")
	}

	b.WriteString(renderWirePortal(st, wire))
	return b.String()
}

// costTable renders the disclosure breakdown. Section totals always show;
// line items only when detailed is set.
func costTable(d mock.Disclosure, detailed bool) string {
	columns := []table.Column{
		{Title: "Costs at Closing", Width: 46},
		{Title: "Amount", Width: 14},
	}

	var rows []table.Row
	for _, section := range []mock.CostSection{d.LoanCosts, d.OtherCosts} {
		rows = append(rows, table.Row{section.Title, mock.FormatUSD(section.Total())})
		if !detailed {
			continue
		}
		for _, it := range section.Items {
			label := "  " + it.Label
			if it.Badge != "" {
				label += " [" + it.Badge + "]"
			}
			rows = append(rows, table.Row{label, mock.FormatUSD(it.Amount)})
		}
	}
	rows = append(rows, table.Row{"WCT Digital Service Credit", mock.FormatUSD(-d.DigitalCredit)})

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t.View()
}

func renderWirePortal(st tui.Styles, wire WirePanel) string {
	head := st.Title.Render("WCT SECURE FINANCIAL OPERATIONS") + "\n" + tui.BoldStyle.Render("Open Secure Wire Portal")
	if !wire.Open {
		return st.Panel.Render(head + "  " + tui.DimStyle.Render("[w] expand"))
	}

	var b strings.Builder
	b.WriteString(head + "  " + tui.DimStyle.Render("[w] collapse"))
	b.WriteString("\n\n")
	b.WriteString(tui.ErrorStyle.Render("CRITICAL: Wire Fraud Prevention"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(64).Render(mock.WireFraudWarning))
	b.WriteString("\n\n")
	toggle := "[r] reveal"
	if wire.Reveal {
		toggle = "[r] hide"
	}
	b.WriteString(tui.DimStyle.Render("ELECTRONIC TRANSFER DETAILS") + "  " + tui.DimStyle.Render(toggle))
	b.WriteString("\n")
	for _, row := range mock.WireInstructions {
		b.WriteString(fmt.Sprintf("%-22s %s\n", row.Label, tui.BoldStyle.Render(row.Shown(wire.Reveal))))
	}
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("HOW TO SEND YOUR WIRE"))
	b.WriteString("\n")
	for i, step := range mock.WireSteps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return st.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func renderClosed(st tui.Styles) string {
	var b strings.Builder
	b.WriteString(tui.SuccessStyle.Render("Authenticated Steward-Level Access"))
	b.WriteString("\n\n")
	for _, svc := range mock.DashboardServices {
		b.WriteString(tui.IconDone + " " + tui.BoldStyle.Render(svc.Title) + "  " + tui.DimStyle.Render(svc.Description) + "\n")
	}
	return b.String()
}
