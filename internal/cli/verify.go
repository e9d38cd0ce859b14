package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dash-ajou/dashgen/internal/scaffold"
)

var (
	verifyFix    bool
	verifyStrict bool
)

// errVerifyFailed is returned when the tree does not match the layout.
var errVerifyFailed = errors.New("project tree does not match the layout")

func init() {
	verifyCmd.Flags().BoolVar(&verifyFix, "fix", false, "Create missing entries")
	verifyCmd.Flags().BoolVar(&verifyStrict, "strict", false, "Also fail when placeholder files are not empty")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check an existing project tree against the layout",
	Long: `Compare the project tree on disk with the planned layout. Each entry is
reported as missing, of the wrong type (file vs directory), or as a non-empty
placeholder. The command never modifies the tree unless --fix is given, and
--fix only creates what is missing.

Exits non-zero when entries are missing or have the wrong type, and with
--strict also when placeholders are not empty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		l, err := cfg.Plan()
		if err != nil {
			return err
		}

		g := newGenerator()
		printer.Heading("Verifying %s", l.Root)
		rep, err := g.Verify(l)
		if err != nil {
			return err
		}

		if verifyFix && rep.Count(scaffold.StatusMissing) > 0 {
			printer.Println("")
			printer.Heading("Creating missing entries")
			quiet := scaffold.New(scaffold.Options{Logger: logger})
			res, err := quiet.Generate(cmd.Context(), l)
			for _, p := range res.Created {
				printer.Fix("Created %s", p)
			}
			if err != nil {
				return err
			}
			logger.Info("verify repaired tree", zap.Int("created", len(res.Created)))

			rep, err = scaffold.New(scaffold.Options{Logger: logger}).Verify(l)
			if err != nil {
				return err
			}
		}

		printSummary(rep)

		switch {
		case rep.Incomplete():
			return fmt.Errorf("%w: %d missing, %d of the wrong type", errVerifyFailed,
				rep.Count(scaffold.StatusMissing), rep.Count(scaffold.StatusWrongKind))
		case verifyStrict && !rep.Healthy():
			return fmt.Errorf("%w: %d placeholder files are not empty", errVerifyFailed,
				rep.Count(scaffold.StatusNotEmpty))
		}
		return nil
	},
}

func printSummary(rep *scaffold.Report) {
	printer.Println("")
	printer.Println("  %d ok, %d missing, %d wrong type, %d not empty",
		rep.Count(scaffold.StatusOK),
		rep.Count(scaffold.StatusMissing),
		rep.Count(scaffold.StatusWrongKind),
		rep.Count(scaffold.StatusNotEmpty))
	if rep.Healthy() {
		printer.Step("%s matches the layout", rep.Root)
	}
}
