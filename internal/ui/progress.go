// Package ui provides plain terminal output for the closing portal.
// This file implements the phase checklist printed by the walkthrough.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/portal"
)

// StepStatus is a phase's display state in the checklist.
type StepStatus int

const (
	StatusPending StepStatus = iota // Not reached yet
	StatusCurrent                   // The session's phase
	StatusDone                      // Already passed
)

// StatusOf places phase p relative to session s. Every phase is done once
// the session is in the dashboard.
func StatusOf(p portal.Phase, s portal.Session) StepStatus {
	switch {
	case s.InDashboard || p.Before(s.Phase):
		return StatusDone
	case p == s.Phase:
		return StatusCurrent
	default:
		return StatusPending
	}
}

// Progress writes walkthrough output. Color enables ANSI escapes; leave it
// off for pipes and CI.
type Progress struct {
	w     io.Writer
	color bool
	steps int
}

// NewProgress creates a Progress writing to w.
func NewProgress(w io.Writer, color bool) *Progress {
	return &Progress{w: w, color: color}
}

// Header prints the transaction banner.
func (p *Progress) Header(brand string, s portal.Session) {
	prop := mock.RealProperty
	fmt.Fprintf(p.w, "%s\n", p.bold(fmt.Sprintf("%s - %s", brand, prop.FullAddress())))
	fmt.Fprintf(p.w, "Buyer: %s  Agent: %s  Closing: %s\n", prop.BuyerName, mock.BuyerAgent.Name, prop.ClosingDate)
	fmt.Fprintf(p.w, "Start: %s\n\n", Describe(s))
}

// Step prints the outcome of one applied action.
func (p *Progress) Step(a portal.Action, s portal.Session, err error) {
	p.steps++
	if err != nil {
		fmt.Fprintf(p.w, "%2d. %s %s: %v\n", p.steps, p.icon(StatusPending, true), a, err)
		return
	}
	fmt.Fprintf(p.w, "%2d. %s %s -> %s\n", p.steps, p.icon(StatusDone, false), a, Describe(s))
}

// Checklist prints every phase with its status for s.
func (p *Progress) Checklist(s portal.Session) {
	fmt.Fprintln(p.w)
	for _, ph := range portal.Phases() {
		st := StatusOf(ph, s)
		line := fmt.Sprintf("  %s %d. %s", p.icon(st, false), ph.StepNumber(), mock.CopyFor(ph).Title)
		if st == StatusCurrent {
			line = p.bold(line)
		}
		fmt.Fprintln(p.w, line)
	}
	if s.InDashboard {
		fmt.Fprintf(p.w, "  %s Smart ONE dashboard (%d days remaining)\n", p.icon(StatusCurrent, false), s.SimulatedDaysRemaining)
	}
}

// Finish prints the closing summary line.
func (p *Progress) Finish(s portal.Session, rejected int) {
	fmt.Fprintf(p.w, "\nDone: %d actions", p.steps)
	if rejected > 0 {
		fmt.Fprintf(p.w, ", %d rejected", rejected)
	}
	fmt.Fprintf(p.w, ". Final: %s\n", Describe(s))
}

// Describe renders a one-line summary of s.
func Describe(s portal.Session) string {
	var b strings.Builder
	if s.InDashboard {
		fmt.Fprintf(&b, "dashboard (%d days)", s.SimulatedDaysRemaining)
	} else {
		fmt.Fprintf(&b, "%s (step %d of %d)", s.Phase, s.Phase.StepNumber(), portal.PhaseCount)
	}
	fmt.Fprintf(&b, " mode=%s experience=%s", s.Mode, s.ExperienceLevel)
	if s.InsuranceOptIn {
		b.WriteString(" +insurance")
	}
	if s.MortgageOptIn {
		b.WriteString(" +mortgage")
	}
	return b.String()
}

// icon returns the status icon, colored when enabled.
func (p *Progress) icon(status StepStatus, failed bool) string {
	if failed {
		return p.paint("31", "x")
	}
	switch status {
	case StatusDone:
		return p.paint("32", "✓")
	case StatusCurrent:
		return p.paint("33", "▸")
	default:
		return p.paint("90", "○")
	}
}

func (p *Progress) bold(s string) string {
	return p.paint("1", s)
}

func (p *Progress) paint(code, s string) string {
	if !p.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}
