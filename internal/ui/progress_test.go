package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wctsmart/closingportal/internal/portal"
)

func TestStatusOf(t *testing.T) {
	s := portal.NewSession()
	s.Phase = portal.PhaseSearch

	require.Equal(t, StatusDone, StatusOf(portal.PhaseIdentity, s))
	require.Equal(t, StatusCurrent, StatusOf(portal.PhaseSearch, s))
	require.Equal(t, StatusPending, StatusOf(portal.PhaseClosed, s))

	s.Phase = portal.PhaseClosed
	s = portal.Advance(s)
	require.Equal(t, StatusDone, StatusOf(portal.PhaseClosed, s))
}

func TestDescribe(t *testing.T) {
	s := portal.NewSession()
	s.ExperienceLevel = portal.ExperienceSimple
	s.InsuranceOptIn = true
	require.Equal(t, "started (step 1 of 8) mode=buyer experience=simple +insurance", Describe(s))

	s.Phase = portal.PhaseClosed
	s = portal.Advance(s)
	require.True(t, strings.HasPrefix(Describe(s), "dashboard (90 days)"))
}

func TestProgressPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, false)

	s := portal.NewSession()
	p.Header("WCT Smart", s)
	next := portal.Advance(s)
	p.Step(portal.Action{Intent: portal.IntentAdvance}, next, nil)
	p.Step(portal.Action{Intent: portal.IntentSimulateTime}, next, errors.New("not offered"))
	p.Checklist(next)
	p.Finish(next, 1)

	out := buf.String()
	require.NotContains(t, out, "\033[", "plain output has no escapes")
	require.Contains(t, out, " 1. ✓ advance -> identity (step 2 of 8)")
	require.Contains(t, out, " 2. x simulate-time: not offered")
	require.Contains(t, out, "▸ 2. Verify Identity")
	require.Contains(t, out, "Done: 2 actions, 1 rejected.")
}

func TestProgressColorOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, true)
	p.Checklist(portal.NewSession())
	require.Contains(t, buf.String(), "\033[33m▸\033[0m")
}
