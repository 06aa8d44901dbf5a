package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc/pkg/client"
	"github.com/notecalc/notecalc/pkg/config"
	"github.com/notecalc/notecalc/pkg/types"
	"github.com/notecalc/notecalc/pkg/valuation"
)

type calcOptions struct {
	raise           float64
	grantLimit      float64
	interestPercent float64
	termMonths      int
	nextRound       float64
	equityFraction  float64

	jsonOutput bool
	remote     bool
}

// request turns the flags into a daemon request. Flags the user did not set
// are left out so the daemon applies its own config.
func (o *calcOptions) request(cmd *cobra.Command) types.CalculateRequest {
	req := types.CalculateRequest{
		RaiseAmount:      o.raise,
		InterestRate:     o.interestPercent / 100,
		NextRoundCapital: o.nextRound,
	}
	if cmd.Flags().Changed("grant-limit") {
		req.GrantLimit = &o.grantLimit
	}
	if cmd.Flags().Changed("term") {
		req.TermMonths = &o.termMonths
	}
	if cmd.Flags().Changed("equity-fraction") {
		req.EquityTradeFraction = &o.equityFraction
	}
	return req
}

func NewCalcCommand() *cobra.Command {
	o := &calcOptions{}

	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Calculate valuation and investor ownership",
		GroupID: gBasic,
		Long: `Calculate government contribution, total capital, convertible note value,
pre- and post-money valuation and investor equity ownership.

The calculation runs once per invocation. With --remote it is performed by
the notecalc daemon instead.`,
		Example: `  notecalc calc --raise 100000 --grant-limit 50000 --interest 8 --term 12 --next-round 500000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				resp *types.CalculateResponse
				err  error
			)
			if o.remote {
				resp, err = calculateRemote(o.request(cmd))
			} else {
				resp, err = calculateLocal(cmd, o)
			}
			if err != nil {
				return err
			}

			if resp.Degenerate {
				logrus.WithField("fields", resp.NonFinite).Warn("result contains non-finite values, check the next round capital and equity fraction")
			}

			if o.jsonOutput {
				return printCalcJSON(cmd.OutOrStdout(), resp)
			}
			printCalcReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.raise, "raise", 0, "amount raised from investors, e.g. convertible note ($)")
	f.Float64Var(&o.grantLimit, "grant-limit", 0, "upper limit for the government innovation grant ($) (default from config)")
	f.Float64Var(&o.interestPercent, "interest", 0, "note interest rate (%)")
	f.IntVar(&o.termMonths, "term", 0, "time until the next funding round in months (default from config)")
	f.Float64Var(&o.nextRound, "next-round", 0, "projected capital needs for the next round ($)")
	f.Float64Var(&o.equityFraction, "equity-fraction", 0, "fraction of equity traded in the next round (default from config)")
	f.BoolVar(&o.jsonOutput, "json", false, "print the result as JSON")
	f.BoolVar(&o.remote, "remote", false, "calculate on the notecalc daemon")

	return cmd
}

func calculateLocal(cmd *cobra.Command, o *calcOptions) (*types.CalculateResponse, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	in := o.request(cmd).Inputs(conf)
	if err := valuation.Validate(in); err != nil {
		return nil, err
	}

	logrus.WithField("inputs", in).Debug("calculating locally")
	res := valuation.Calculate(in)
	resp := types.NewCalculateResponse(in, res, valuation.Formatter{CurrencySymbol: conf.CurrencySymbol()})
	return &resp, nil
}

func calculateRemote(req types.CalculateRequest) (*types.CalculateResponse, error) {
	apiClient := client.NewClient(daemonAddr)

	if daemonVersion, err := apiClient.GetVersion(); err == nil {
		warnVersionMismatch(daemonVersion)
	}

	return apiClient.Calculate(req)
}

func printCalcJSON(w io.Writer, resp *types.CalculateResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func printCalcReport(w io.Writer, resp *types.CalculateResponse) {
	fmt.Fprintln(w, bold("Results:"))
	for _, l := range resp.Display {
		fmt.Fprintf(w, "  %s: %s\n", l.Label, bold("%s", l.Value))
	}
	if resp.Degenerate {
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.New(color.Bold, color.FgRed).Sprint("Some values are not finite (N/A or ∞)."))
		fmt.Fprintln(w, "  The next round capital and equity fraction must both be greater than 0.")
	}
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
