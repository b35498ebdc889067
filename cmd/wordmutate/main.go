package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordmutate/internal/batch"
	"codeberg.org/snonux/wordmutate/internal/cli"
	"codeberg.org/snonux/wordmutate/internal/generator"
	"codeberg.org/snonux/wordmutate/internal/mutation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)

	// A positional word stands in for --word and beats env and config values
	wordFlagSet := cmd.Flags().Changed("word")
	if len(args) > 0 {
		if wordFlagSet && flags.Word != args[0] {
			return fmt.Errorf("seed word given twice: %q and %q", flags.Word, args[0])
		}
		flags.Word = args[0]
	}
	explicitWord := wordFlagSet || len(args) > 0

	// In batch mode only a word from the command line joins the seed list
	if flags.BatchFile != "" && !explicitWord {
		flags.Word = ""
	}

	logger, err := cli.NewLogger(flags.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", zap.String("path", used))
	}

	cfg, err := generator.NewConfig(flags)
	if err != nil {
		return err
	}

	// Read and check every seed before producing any output
	var seeds []string
	if flags.BatchFile != "" {
		seeds, err = batch.ReadSeedFile(flags.BatchFile)
		if err != nil {
			return err
		}
		if cfg.Word != "" {
			seeds = append([]string{cfg.Word}, seeds...)
		}
		if len(seeds) == 0 {
			return fmt.Errorf("no seed words in %s", flags.BatchFile)
		}
		for _, seed := range seeds {
			if err := generator.ValidateWord(seed); err != nil {
				return err
			}
		}
	}

	gen, err := generator.New(cfg, mutation.NewRandom(cfg.Seed), logger)
	if err != nil {
		return err
	}

	logger.Debug("Starting run",
		zap.Stringer("strategy", cfg.Strategy),
		zap.Int64("random_seed", cfg.Seed),
		zap.Int("seeds", max(len(seeds), 1)))

	out := cmd.OutOrStdout()
	if seeds != nil {
		return gen.RunBatch(out, seeds)
	}
	return gen.Run(out)
}
