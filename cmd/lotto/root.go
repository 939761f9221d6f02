package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kydenul/lotto"
)

type rootOptions struct {
	configFile string
	lang       string
	seed       uint64
	debug      bool
	format     string
	color      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "lotto",
		Short:         "Recommend 6/45 lottery number sets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default: config.yaml in ., ./config, /etc/lotto, $HOME/.lotto)")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "Message language (en|ko)")
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible run (disables the secure generator)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "pretty", "Output format (pretty|json)")
	cmd.PersistentFlags().BoolVar(&opts.color, "color", false, "Color the numbers by band of ten")

	cmd.AddCommand(randomCmd(opts), fortuneCmd(opts), manualCmd(opts))
	return cmd
}

// newEngine loads the configuration, applies flag overrides and builds the engine
func newEngine(cmd *cobra.Command, opts *rootOptions) (*lotto.LottoEngine, error) {
	cm := lotto.NewConfigManager()
	if opts.configFile != "" {
		cm.SetConfigFile(opts.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cm.Set("fortune.language", opts.lang)
	}
	if flags.Changed("seed") {
		cm.Set("generator.secure_random", false)
		cm.Set("generator.seed", opts.seed)
	}
	if opts.debug {
		cm.Set("log.level", "debug")
	}

	config, err := cm.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := lotto.NewLoggerFromConfig(config.Log, os.Stderr)
	return lotto.NewLottoEngineWithConfigAndLogger(cm, logger), nil
}
