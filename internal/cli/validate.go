package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/capsim/internal/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a parameter file",
		Long: `Load a YAML parameter file, apply CAPSIM_* environment overrides, and
check that the resulting parameters are valid. Prints the effective
parameters on success.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.Load(args[0])
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(params)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: residents=%d businesses=%d landlords=%d steps=%d seed=%d\n",
				params.Residents, params.Businesses, params.Landlords,
				params.Steps, params.Seed)
			return nil
		},
	}
	return cmd
}
