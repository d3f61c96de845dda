package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/capsim/internal/config"
	"github.com/talgya/capsim/internal/engine"
	"github.com/talgya/capsim/internal/entropy"
	"github.com/talgya/capsim/internal/report"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Config     string
	Residents  int
	Businesses int
	Landlords  int
	Steps      int
	Seed       int64
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and print the report",
		Long: `Run the universal capital simulation.

Parameters come from defaults, then an optional YAML config file, then
CAPSIM_* environment variables, then explicit flags.

Example:
  capsim run --residents 500 --steps 12 --seed 42
  capsim run --config scenario.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to YAML parameter file")
	cmd.Flags().IntVar(&opts.Residents, "residents", defaults.Residents, "number of residents")
	cmd.Flags().IntVar(&opts.Businesses, "businesses", defaults.Businesses, "number of businesses")
	cmd.Flags().IntVar(&opts.Landlords, "landlords", defaults.Landlords, "number of landlords")
	cmd.Flags().IntVar(&opts.Steps, "steps", defaults.Steps, "number of monthly steps")
	cmd.Flags().Int64Var(&opts.Seed, "seed", defaults.Seed, "random seed (0 = draw one)")

	return cmd
}

func runSimulation(opts *RunOptions, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	params, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	// Explicit flags win over file and environment.
	flags := cmd.Flags()
	if flags.Changed("residents") {
		params.Residents = opts.Residents
	}
	if flags.Changed("businesses") {
		params.Businesses = opts.Businesses
	}
	if flags.Changed("landlords") {
		params.Landlords = opts.Landlords
	}
	if flags.Changed("steps") {
		params.Steps = opts.Steps
	}
	if flags.Changed("seed") {
		params.Seed = opts.Seed
	}

	if err := params.Validate(); err != nil {
		return err
	}

	src := entropy.NewSource(params.Seed)
	result, err := engine.Run(params, src)
	if err != nil {
		return err
	}

	rep := report.Build(result)
	if opts.Format == "json" {
		return rep.RenderJSON(cmd.OutOrStdout())
	}
	rep.Render(cmd.OutOrStdout())
	return nil
}
