package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fiscal-sim/fiscal-sim/sim"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)

var validOutputFormats = map[string]bool{
	OutputTable: true,
	OutputJSON:  true,
	OutputCSV:   true,
}

// options holds the flag values of one command-line invocation.
type options struct {
	seed             int64  // Master seed; run uses it directly, montecarlo derives one stream per trial
	logLevel         string // Log verbosity level
	defaultsFilePath string // Model calibration and scenario catalogue
	paramsFilePath   string // Optional YAML overrides on top of the calibration
	years            int    // Projection horizon; 0 keeps anos from the calibration
	scenarioID       string // Named scenario replacing the calibration's shocks
	shocks           sim.Shocks
	noFuelSubsidy    bool
	output           string

	// montecarlo only
	trials  int
	workers int
}

// shockFlag binds one --shock-* flag to its Shocks field.
type shockFlag struct {
	name   string
	target *float64
	usage  string
}

// shockFlags lists the seven shock flags in a fixed order, bound to s.
func shockFlags(s *sim.Shocks) []shockFlag {
	return []shockFlag{
		{"shock-tc", &s.ExchangeRate, "Exchange rate shock in percent"},
		{"shock-gas", &s.Gas, "Gas price shock in percent"},
		{"shock-gold", &s.Gold, "Gold price shock in percent"},
		{"shock-silver", &s.Silver, "Silver price shock in percent"},
		{"shock-zinc", &s.Zinc, "Zinc price shock in percent"},
		{"shock-tin", &s.Tin, "Tin price shock in percent"},
		{"shock-lead", &s.Lead, "Lead price shock in percent"},
	}
}

// newRootCmd builds the command tree. Each invocation gets its own tree so
// flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fiscal-sim",
		Short:         "Stochastic multi-year fiscal projection simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&opts.defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to the model calibration and scenario catalogue")
	pf.StringVar(&opts.paramsFilePath, "params", "", "YAML file overriding calibration parameters")
	pf.Int64Var(&opts.seed, "seed", 42, "Seed for the random shock draws")
	pf.IntVar(&opts.years, "years", 0, "Years to project (default: anos from the calibration)")
	pf.StringVar(&opts.scenarioID, "scenario", "", "Named scenario (see 'fiscal-sim scenarios')")
	for _, f := range shockFlags(&opts.shocks) {
		pf.Float64Var(f.target, f.name, 0, f.usage)
	}
	pf.BoolVar(&opts.noFuelSubsidy, "no-fuel-subsidy", false, "Disable the fuel import subsidy")
	pf.StringVar(&opts.output, "output", OutputTable, "Output format (table, json, csv)")

	root.AddCommand(
		newRunCmd(opts),
		newMonteCarloCmd(opts),
		newScenariosCmd(opts),
		newDefaultsCmd(opts),
	)
	return root
}

// Execute runs the CLI root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

// setup applies user preferences for every flag the user did not set, then
// configures logging and validates the output format.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(ConfigPath())
	if err != nil {
		return err
	}
	o.applyConfig(cmd, cfg)

	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	logrus.SetLevel(level)

	if !validOutputFormats[o.output] {
		return fmt.Errorf("invalid output format %q (want table, json or csv)", o.output)
	}
	return nil
}

func (o *options) applyConfig(cmd *cobra.Command, cfg Config) {
	flags := cmd.Flags()
	if !flags.Changed("seed") {
		o.seed = cfg.General.Seed
	}
	if !flags.Changed("log") && cfg.General.LogLevel != "" {
		o.logLevel = cfg.General.LogLevel
	}
	if !flags.Changed("output") && cfg.General.Output != "" {
		o.output = cfg.General.Output
	}
	if !flags.Changed("defaults-filepath") && cfg.General.DefaultsFile != "" {
		o.defaultsFilePath = cfg.General.DefaultsFile
	}
	if !flags.Changed("trials") && cfg.MonteCarlo.Trials > 0 {
		o.trials = cfg.MonteCarlo.Trials
	}
	if !flags.Changed("workers") && cfg.MonteCarlo.Workers > 0 {
		o.workers = cfg.MonteCarlo.Workers
	}
}

// resolveParameters builds the run's parameters: calibration, then the
// --params file, then the scenario (which replaces all shocks), then any
// explicit --shock-* flag, then --years and --no-fuel-subsidy.
func (o *options) resolveParameters(cmd *cobra.Command) (*sim.SimulationParameters, *sim.Defaults, error) {
	d, err := sim.LoadDefaults(o.defaultsFilePath)
	if err != nil {
		return nil, nil, err
	}
	p := &d.Parameters
	if o.paramsFilePath != "" {
		if p, err = sim.LoadParameterOverrides(o.paramsFilePath, p); err != nil {
			return nil, nil, err
		}
	}
	if o.scenarioID != "" {
		s, err := d.Scenarios.Lookup(o.scenarioID)
		if err != nil {
			return nil, nil, err
		}
		p = sim.ApplyScenario(p, s)
		logrus.Infof("Applying scenario %s (%s)", o.scenarioID, s.Name)
	}

	flags := cmd.Flags()
	shocks := p.Shocks
	set := shockFlags(&o.shocks)
	for i, f := range shockFlags(&shocks) {
		if flags.Changed(f.name) {
			*f.target = *set[i].target
		}
	}
	p = p.WithShocks(shocks)

	if flags.Changed("years") {
		p.Years = o.years
	}
	if p.Years < 0 {
		return nil, nil, fmt.Errorf("years must be non-negative, got %d", p.Years)
	}
	if o.noFuelSubsidy {
		p.FuelSubsidy.Enabled = false
	}
	return p, d, nil
}
