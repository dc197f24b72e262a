package main

import (
	"fmt"
	"os"

	"github.com/investsim/investment-simulator/internal/calculation"
	"github.com/investsim/investment-simulator/internal/config"
	"github.com/investsim/investment-simulator/internal/domain"
	"github.com/investsim/investment-simulator/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	format     string
	outputPath string
	exportCSV  string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	params := config.DefaultParameters()

	cmd := &cobra.Command{
		Use:   "investsim",
		Short: "Project a recurring investment plan against a savings baseline",
		Long: `investsim projects the trajectory of a recurring investment plan over a
multi-year horizon: compounding growth, a no-investment savings baseline,
inflation-adjusted values and a 4%-rule withdrawal estimate.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjection(cmd, opts, params)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&params.InitialInvestment, "initial", params.InitialInvestment, "initial lump-sum investment")
	flags.Float64Var(&params.MonthlyInvestment, "monthly", params.MonthlyInvestment, "monthly contribution")
	flags.Float64Var(&params.AnnualContributionGrowth, "contribution-growth", params.AnnualContributionGrowth, "annual contribution growth (percent)")
	flags.Float64Var(&params.AnnualReturn, "return", params.AnnualReturn, "expected annual return (percent)")
	flags.Float64Var(&params.InflationRate, "inflation", params.InflationRate, "annual inflation rate (percent)")
	flags.IntVar(&params.Years, "years", params.Years, "investment horizon in years (1-50)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML parameter file (explicit flags override)")
	flags.StringVarP(&opts.format, "format", "f", "console", "report format: console, csv, json")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "write report to file instead of stdout")
	flags.StringVar(&opts.exportCSV, "export-csv", "", "also export the joined yearly view as CSV to this path")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only log warnings and errors")

	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example parameter file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "investsim.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			params := config.DefaultParameters()
			if err := config.SaveParameters(&params, filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example parameters to %s\n", filename)
			return nil
		},
	}
}

func runProjection(cmd *cobra.Command, opts *rootOptions, params domain.Parameters) error {
	logger := newLogger(opts.quiet)

	if opts.configFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(opts.configFile)
		if err != nil {
			return err
		}
		params = mergeFlagOverrides(cmd, *loaded, params)
	}

	engine, err := calculation.NewProjectionEngine(params)
	if err != nil {
		return err
	}
	engine.SetLogger(zerologAdapter{log: logger})

	logger.Debug().
		Float64("initial", params.InitialInvestment).
		Float64("monthly", params.MonthlyInvestment).
		Int("years", params.Years).
		Msg("running projection")

	report := engine.Report()

	if opts.exportCSV != "" {
		if err := engine.ExportCSVFile(opts.exportCSV); err != nil {
			return err
		}
	}

	if opts.outputPath == "" && output.NormalizeFormatName(opts.format) == "console" {
		f := output.GetFormatterByName("console")
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	written, err := output.WriteReport(report, opts.format, opts.outputPath)
	if err != nil {
		return err
	}
	logger.Info().Str("file", written).Msg("report written")
	return nil
}

// mergeFlagOverrides applies explicitly set flags on top of file parameters.
func mergeFlagOverrides(cmd *cobra.Command, fromFile, fromFlags domain.Parameters) domain.Parameters {
	merged := fromFile
	if cmd.Flags().Changed("initial") {
		merged.InitialInvestment = fromFlags.InitialInvestment
	}
	if cmd.Flags().Changed("monthly") {
		merged.MonthlyInvestment = fromFlags.MonthlyInvestment
	}
	if cmd.Flags().Changed("contribution-growth") {
		merged.AnnualContributionGrowth = fromFlags.AnnualContributionGrowth
	}
	if cmd.Flags().Changed("return") {
		merged.AnnualReturn = fromFlags.AnnualReturn
	}
	if cmd.Flags().Changed("inflation") {
		merged.InflationRate = fromFlags.InflationRate
	}
	if cmd.Flags().Changed("years") {
		merged.Years = fromFlags.Years
	}
	return merged
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// zerologAdapter exposes a zerolog.Logger through the engine's Logger interface.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }
