// Command ocrctl inspects and maintains OCR training runs: checkpoint
// contents, warm starts, weight-file pruning, and recorded run history.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ocrctl",
	Short: "OCR training run utilities",
	Long: `Utilities around OCR training runs: inspect checkpoint files,
warm-start new models from mismatched checkpoints, prune old weight
files, and list recorded evaluation runs.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("store", "", "store backend: memory|sqlite (overrides OCRMASTER_STORE)")
	rootCmd.PersistentFlags().String("db-path", "", "sqlite database path (overrides OCRMASTER_DB_PATH)")
	rootCmd.PersistentFlags().String("artifacts-dir", "", "run artifacts directory (overrides OCRMASTER_ARTIFACTS_DIR)")
	rootCmd.PersistentFlags().String("log-path", "", "mirror logs to this file (overrides OCRMASTER_LOG_PATH)")
	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db-path"))
	viper.BindPFlag("artifacts_dir", rootCmd.PersistentFlags().Lookup("artifacts-dir"))
	viper.BindPFlag("log_path", rootCmd.PersistentFlags().Lookup("log-path"))

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(warmstartCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(runsCmd)
}

func initConfig() {
	viper.SetEnvPrefix("OCRMASTER")
	viper.AutomaticEnv()

	viper.SetDefault("store", "sqlite")
	viper.SetDefault("db_path", "ocrmaster.db")
	viper.SetDefault("artifacts_dir", "artifacts")
}
