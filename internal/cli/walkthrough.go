// walkthrough.go implements the "closingportal walkthrough" command, which
// applies a scripted list of intents without a terminal UI.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
	"github.com/wctsmart/closingportal/internal/ui"
)

var walkthroughCmd = &cobra.Command{
	Use:   "walkthrough [intent...]",
	Short: "Apply a scripted list of intents and print each step",
	Long: `Start a fresh session, apply each intent in order and print the resulting
state. Intents: next, back, toggle, select:<simple|standard|complete>,
simulate, insurance[:on|off], mortgage[:on|off].

Intents that are not offered in the current state are reported and skipped
unless --strict is set.`,
	Example: `  closingportal walkthrough select:standard next next insurance:on
  closingportal walkthrough --strict select:simple next toggle`,
	RunE: runWalkthroughCmd,
}

var (
	strictFlag    bool
	checklistFlag bool
)

func init() {
	walkthroughCmd.Flags().BoolVar(&strictFlag, "strict", false, "Stop at the first intent that is not offered")
	walkthroughCmd.Flags().BoolVar(&checklistFlag, "checklist", true, "Print the phase checklist after the last step")
}

func runWalkthroughCmd(cmd *cobra.Command, args []string) error {
	actions, err := portal.ParseActions(args)
	if err != nil {
		return err
	}

	rt, err := openRuntime(projectDir, noLog)
	if err != nil {
		return err
	}

	opts := walkthroughOptions{
		Brand:     rt.cfg.Brand.LogoName,
		Strict:    strictFlag,
		Checklist: checklistFlag,
		Color:     tui.IsTTY(),
	}
	if _, err := runWalkthrough(cmd.OutOrStdout(), rt.controller, actions, opts); err != nil {
		_ = rt.close()
		return err
	}
	return rt.close()
}

type walkthroughOptions struct {
	Brand     string
	Strict    bool
	Checklist bool
	Color     bool
}

// runWalkthrough applies actions to c and writes a transcript to w. It returns
// the number of rejected actions.
func runWalkthrough(w io.Writer, c *portal.Controller, actions []portal.Action, opts walkthroughOptions) (int, error) {
	p := ui.NewProgress(w, opts.Color)
	p.Header(opts.Brand, c.State())

	rejected := 0
	for _, a := range actions {
		s, err := c.Apply(a)
		p.Step(a, s, err)
		if err == nil {
			continue
		}
		if !errors.Is(err, portal.ErrIntentNotOffered) || opts.Strict {
			return rejected + 1, fmt.Errorf("walkthrough stopped: %w", err)
		}
		rejected++
	}

	if opts.Checklist {
		p.Checklist(c.State())
	}
	p.Finish(c.State(), rejected)
	return rejected, nil
}
