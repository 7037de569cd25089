package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// persistent flags
	cfgFile     string
	formatName  string
	noColor     bool
	verboseMode bool
	debugMode   bool
	indentSize  int
)

var rootCmd = &cobra.Command{
	Use:   "dictkit",
	Short: "Inspect, merge and diff nested mapping documents",
	Long: `dictkit works on nested mapping documents (JSON, YAML or MessagePack):
it renders differences, merges documents recursively, resolves dotted
paths and lists leaves, optionally filtered by an expression.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseMode || viper.GetBool("verbose") {
			setupLog = setupLog.Level(zerolog.DebugLevel)
		}
	},
}

// setupLog writes human-readable progress to stderr. Debug-level output
// is enabled by --verbose.
var setupLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().
	Logger().
	Level(zerolog.WarnLevel)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.dictkit.yaml)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "",
		"output format: json, yaml or msgpack (default: by file extension)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colors in rendered diffs")
	rootCmd.PersistentFlags().IntVar(&indentSize, "indent", 2,
		"indentation width for rendered output")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false,
		"log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"dump parsed documents to the log")

	// allow some flags to be set via environment variables / config file
	mustBind("format",
		viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format")))
	mustBind("no-color",
		viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color")))
	mustBind("indent",
		viper.BindPFlag("indent", rootCmd.PersistentFlags().Lookup("indent")))
	mustBind("verbose",
		viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))
}

func mustBind(name string, err error) {
	if err != nil {
		setupLog.Fatal().Err(err).Msgf("Cannot bind flag %s", name)
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dictkit")
	}

	viper.SetEnvPrefix("DICTKIT")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		setupLog.Debug().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}
