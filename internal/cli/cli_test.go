package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wctsmart/closingportal/internal/config"
	"github.com/wctsmart/closingportal/internal/log"
	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/testutil"
)

func walk(t *testing.T, script []string, opts walkthroughOptions) (*portal.Controller, string, int, error) {
	t.Helper()
	actions, err := portal.ParseActions(script)
	require.NoError(t, err)

	c := portal.NewController(portal.DefaultOptions(), nil)
	var buf bytes.Buffer
	rejected, err := runWalkthrough(&buf, c, actions, opts)
	return c, buf.String(), rejected, err
}

func TestWalkthroughDashboardScenario(t *testing.T) {
	c, out, rejected, err := walk(t, testutil.ScenarioDashboard, walkthroughOptions{Brand: "WCT Smart", Checklist: true})
	require.NoError(t, err)
	require.Zero(t, rejected)

	s := c.State()
	require.Equal(t, portal.PhaseClosed, s.Phase)
	require.False(t, s.InDashboard)
	require.Equal(t, portal.SimulatedDaysRemaining, s.SimulatedDaysRemaining)

	require.Contains(t, out, "WCT Smart - 8421 Wedgewood Ridge Ct")
	require.Contains(t, out, "advance -> dashboard (90 days)")
	require.Contains(t, out, "simulate-time -> dashboard (15 days)")
	require.Contains(t, out, "Done: 11 actions.")
}

func TestWalkthroughSkipsRejectedIntents(t *testing.T) {
	c, out, rejected, err := walk(t, testutil.ScenarioAgentPeek, walkthroughOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, rejected)
	require.Contains(t, out, portal.ErrIntentNotOffered.Error())
	require.Contains(t, out, "1 rejected")

	// The next in agent mode was refused; the two in buyer mode were not.
	require.Equal(t, portal.PhaseSearch, c.State().Phase)
	require.Equal(t, portal.ModeBuyer, c.State().Mode)
}

func TestWalkthroughStrict(t *testing.T) {
	c, _, rejected, err := walk(t, testutil.ScenarioAgentPeek, walkthroughOptions{Strict: true})
	require.ErrorIs(t, err, portal.ErrIntentNotOffered)
	require.Equal(t, 1, rejected)
	require.Equal(t, portal.ModeAgent, c.State().Mode, "stops before the second toggle")
}

func TestWalkthroughSimpleBuyer(t *testing.T) {
	c, out, _, err := walk(t, testutil.ScenarioSimpleBuyer, walkthroughOptions{Checklist: true})
	require.NoError(t, err)
	require.Equal(t, portal.PhaseSummary, c.State().Phase)
	require.True(t, c.State().InsuranceOptIn)
	require.Contains(t, out, "+insurance")
	require.Contains(t, out, "7. Closing Disclosure")
}

func TestOpenRuntimeLogsSession(t *testing.T) {
	dir := testutil.TempProject(t, testutil.EmptyProject())

	rt, err := openRuntime(dir, false)
	require.NoError(t, err)
	require.NotNil(t, rt.logger)
	require.NoError(t, rt.controller.SelectExperienceLevel(portal.ExperienceSimple))
	require.NoError(t, rt.controller.Advance())
	require.NoError(t, rt.close())

	var buf bytes.Buffer
	require.NoError(t, printLog(&buf, rt.logger, "", false))
	out := buf.String()
	require.Contains(t, out, "Session "+rt.controller.ID())
	require.Contains(t, out, log.EventExperienceSelected)
	require.Contains(t, out, log.EventPhaseAdvanced)
	require.Contains(t, out, log.EventSessionEnded)
}

func TestOpenRuntimeWithoutLog(t *testing.T) {
	dir := testutil.TempProject(t, testutil.ConfigProject(testutil.GateDisabledConfig))

	rt, err := openRuntime(dir, false)
	require.NoError(t, err)
	require.Nil(t, rt.logger)
	require.Equal(t, portal.ScreenBuyerFlow, rt.controller.Screen(), "gate disabled by config")
	require.NoError(t, rt.close())

	_, err = os.Stat(filepath.Join(dir, ".closingportal", "log.jsonl"))
	require.True(t, os.IsNotExist(err))

	rt, err = openRuntime(t.TempDir(), true)
	require.NoError(t, err)
	require.Nil(t, rt.logger, "--no-log overrides the config")
}

func TestOpenRuntimeCustomClock(t *testing.T) {
	dir := testutil.TempProject(t, testutil.ConfigProject(testutil.ShortClockConfig))

	rt, err := openRuntime(dir, false)
	require.NoError(t, err)
	require.Equal(t, 30, rt.controller.State().SimulatedDaysRemaining)
}

func TestLoadConfigFallbacks(t *testing.T) {
	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)

	malformed := testutil.TempProject(t, testutil.ConfigProject("brand: [not a map"))
	cfg, err = loadConfig(malformed)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)

	invalid := testutil.TempProject(t, testutil.ConfigProject("dashboard:\n  initial_days_remaining: 10\n  simulated_days_remaining: 20\n"))
	_, err = loadConfig(invalid)
	require.ErrorContains(t, err, "exceeds initial_days_remaining")
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := initConfig(dir, false)
	require.NoError(t, err)
	require.Equal(t, config.Path(dir), path)

	_, err = initConfig(dir, false)
	require.ErrorIs(t, err, ErrConfigExists)

	_, err = initConfig(dir, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, dir))
	require.Contains(t, buf.String(), "logo_name: WCT Smart")
	require.Contains(t, buf.String(), "initial_days_remaining: 90")
}

func TestPrintLogEmpty(t *testing.T) {
	logger, err := log.NewLogger(t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printLog(&buf, logger, "", false))
	require.Contains(t, buf.String(), "No events recorded yet")

	require.NoError(t, logger.Append(log.LogEvent{Event: log.EventSessionStarted, SessionID: "a"}))
	require.Error(t, printLog(&buf, logger, "missing", false))
}

func TestPruneLog(t *testing.T) {
	logger, err := log.NewLogger(t.TempDir())
	require.NoError(t, err)
	now := time.Date(2026, 3, 27, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, logger.Append(log.LogEvent{Time: now.AddDate(0, 0, -20*i), Event: log.EventSessionStarted, SessionID: id}))
	}

	var buf bytes.Buffer
	require.NoError(t, pruneLog(&buf, logger, pruneOptions{MaxAgeDays: 30, DryRun: true, Now: now}))
	require.Contains(t, buf.String(), "Would remove 1 session(s)")
	require.Contains(t, buf.String(), "s3")

	buf.Reset()
	require.NoError(t, pruneLog(&buf, logger, pruneOptions{Keep: 1, Now: now}))
	require.Contains(t, buf.String(), "Removed 2 session(s)")

	events, err := logger.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "s1", events[0].SessionID)
}
