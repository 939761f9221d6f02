package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/kydenul/lotto"
)

func randomCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Recommend sets without fixed numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recommend(cmd, opts, lotto.NewUIState(lotto.ModeRandom), "")
		},
	}
}

func fortuneCmd(opts *rootOptions) *cobra.Command {
	var name, dob, today string

	c := &cobra.Command{
		Use:   "fortune",
		Short: "Recommend sets containing a lucky number derived from a date of birth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := lotto.NewUIState(lotto.ModeFortune).SetName(name).SetBirthDate(dob)
			return recommend(cmd, opts, state, today)
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "", "Your name (required)")
	c.Flags().StringVarP(&dob, "dob", "d", "", "Date of birth, YYYYMMDD (required)")
	c.Flags().StringVar(&today, "today", "", "Reference date, YYYYMMDD (default: today in fortune.timezone)")
	return c
}

func manualCmd(opts *rootOptions) *cobra.Command {
	var numbers string

	c := &cobra.Command{
		Use:   "manual",
		Short: "Recommend sets containing the given numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := lotto.NewUIState(lotto.ModeManual).SetFixedInput(numbers)
			return recommend(cmd, opts, state, "")
		},
	}

	c.Flags().StringVar(&numbers, "numbers", "", `Numbers to include, comma separated (e.g. "7, 15, 23")`)
	return c
}

func recommend(cmd *cobra.Command, opts *rootOptions, state lotto.UIState, referenceDate string) error {
	engine, err := newEngine(cmd, opts)
	if err != nil {
		return err
	}
	printer := engine.FortuneMapper().Printer()

	req := state.Request()
	req.ReferenceDate = referenceDate

	batch, err := engine.Recommend(cmd.Context(), req)
	state = state.ApplyResult(batch, err, printer)

	out := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		if err := printJSON(out, state); err != nil {
			return err
		}
	case "pretty", "":
		printPretty(out, state, printer, opts.color)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", opts.format)
	}

	if state.Error != "" {
		return errors.New(state.Error)
	}
	return nil
}

type stateOutput struct {
	Mode  string           `json:"mode"`
	Sets  []lotto.LottoSet `json:"sets"`
	Info  string           `json:"info,omitempty"`
	Error string           `json:"error,omitempty"`
}

func printJSON(w io.Writer, state lotto.UIState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stateOutput{
		Mode:  state.Mode.String(),
		Sets:  state.Sets,
		Info:  state.Info,
		Error: state.Error,
	})
}

func printPretty(w io.Writer, state lotto.UIState, p *message.Printer, color bool) {
	if state.Error != "" {
		fmt.Fprintln(w, state.Error)
		return
	}
	if state.Info != "" {
		fmt.Fprintln(w, state.Info)
		fmt.Fprintln(w)
	}

	for i, set := range state.Sets {
		fmt.Fprintf(w, "%-8s %s\n", lotto.SetLabel(p, i), formatSet(set, color))
	}
}

func formatSet(set lotto.LottoSet, color bool) string {
	if !color {
		return set.String()
	}

	parts := make([]string, len(set))
	for i, n := range set {
		r, g, b := hexRGB(lotto.BallColor(n))
		parts[i] = fmt.Sprintf("\x1b[1;97;48;2;%d;%d;%dm %2d \x1b[0m", r, g, b, n)
	}
	return strings.Join(parts, " ")
}

// hexRGB parses "#rrggbb"
func hexRGB(hex string) (r, g, b uint64) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	r, _ = strconv.ParseUint(hex[0:2], 16, 8)
	g, _ = strconv.ParseUint(hex[2:4], 16, 8)
	b, _ = strconv.ParseUint(hex[4:6], 16, 8)
	return r, g, b
}
