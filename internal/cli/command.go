package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codeberg.org/snonux/wordmutate/internal"
	"codeberg.org/snonux/wordmutate/internal/mutation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordmutate [word]",
		Short: "Phonetic word mutation generator",
		Long: `wordmutate generates variants of a seed word by swapping letters
for others of the same phonetic class (vowels, hard consonants or soft
consonants). Every generated word is the input of the next iteration.

Strategies:
  rotate-random-letter     move one random letter to the next in its class
  rotate-word              move every letter to the next in its class
  randomize-word           replace every letter with a random one of its class
  randomize-random-letter  replace one random letter (default)

Examples:
  wordmutate --word foobar --number 5
  wordmutate cat --strategy rotate-word --number 1
  wordmutate --batch seeds.txt --exclude xq --prefix www. --suffix .com`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
		// Config problems must stop the run before any word is printed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return InitConfig(flags.CfgFile)
		},
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordmutate.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	// Local flags
	cmd.Flags().StringVarP(&flags.Word, "word", "w", "", "Seed word (may also be given as argument)")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Prepended to every generated word")
	cmd.Flags().StringVar(&flags.Suffix, "suffix", "", "Appended to every generated word")
	cmd.Flags().IntVarP(&flags.Number, "number", "n", flags.Number, "How many words to generate")
	cmd.Flags().StringVarP(&flags.Exclude, "exclude", "x", "", `Letters never to produce, for example "abcd"`)
	cmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", flags.Strategy, "One of: "+strings.Join(mutation.Strategies(), ", "))
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed for reproducible output (0 picks one)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Mutate every seed word from file (one per line)")

	cmd.RegisterFlagCompletionFunc("strategy", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return mutation.Strategies(), cobra.ShellCompDirectiveNoFileComp
	})

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("word", cmd.Flags().Lookup("word"))
	viper.BindPFlag("prefix", cmd.Flags().Lookup("prefix"))
	viper.BindPFlag("suffix", cmd.Flags().Lookup("suffix"))
	viper.BindPFlag("number", cmd.Flags().Lookup("number"))
	viper.BindPFlag("exclude", cmd.Flags().Lookup("exclude"))
	viper.BindPFlag("strategy", cmd.Flags().Lookup("strategy"))
	viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	viper.BindPFlag("batch", cmd.Flags().Lookup("batch"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
}

// InitConfig initializes viper configuration. A missing default config file
// is fine, but a file named with --config must exist and parse.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".wordmutate" (without extension)
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordmutate")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDMUTATE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// ApplyConfig copies values resolved by viper back into flags, so that
// environment variables and the config file fill in flags not given on
// the command line.
func ApplyConfig(flags *Flags) {
	flags.Word = viper.GetString("word")
	flags.Prefix = viper.GetString("prefix")
	flags.Suffix = viper.GetString("suffix")
	flags.Number = viper.GetInt("number")
	flags.Exclude = viper.GetString("exclude")
	flags.Strategy = viper.GetString("strategy")
	flags.Seed = viper.GetInt64("seed")
	flags.BatchFile = viper.GetString("batch")
	flags.Verbose = viper.GetBool("verbose")
}

// NewLogger builds the stderr logger. Debug output is enabled by verbose.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
