package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"init"},
	Short:   "Create the project skeleton",
	Long: `Create the root directory, one subtree per service, and one package per
shared library. Every file is created empty. Existing directories and files
are left untouched, so the command can be re-run to fill in what is missing.

The run stops at the first filesystem error. Whatever was created before the
error stays in place.`,
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

		_, err = newGenerator().Generate(cmd.Context(), l)
		return err
	},
}
