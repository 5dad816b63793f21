package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordbench/internal/benchmark"
	"wordbench/internal/config"
	"wordbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordbench",
	Short: "Cross-language Word document benchmark harness",
	Long: `wordbench runs document-creation workloads against Word-processing
libraries across ecosystems (Golang/wordZero, JavaScript/docx,
Python/python-docx), normalizes the timing and memory measurements, and
produces a comparative Markdown report with charts.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'wordbench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("results-dir", "", "Results directory (overrides config and WORDBENCH_RESULTS_DIR)")
	rootCmd.PersistentFlags().String("baseline", "", "Baseline platform for ratio comparisons")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("results_dir", rootCmd.PersistentFlags().Lookup("results-dir"))
	viper.BindPFlag("baseline", rootCmd.PersistentFlags().Lookup("baseline"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// explicit .env loading, missing file is fine
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("WORDBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("results_dir", "results")
	viper.SetDefault("baseline", benchmark.PlatformGolang)
	viper.SetDefault("bench_package", "./benchmarks")
	viper.SetDefault("bench_timeout", "10m")
	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("history_db", ".wordbench/history.db")
	viper.SetDefault("verbose", false)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}
