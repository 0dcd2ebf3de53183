package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VitaliiAI/OCRMaster/internal/checkpoint"
	"github.com/VitaliiAI/OCRMaster/internal/logging"
)

var (
	pruneKeep    int
	prunePattern string
)

var pruneCmd = &cobra.Command{
	Use:   "prune <dir>",
	Short: "Delete old weight files beyond the retention limit",
	Long: `Applies the checkpoint retention policy to an existing weights
directory: files matching the pattern are ordered oldest first by
modification time, and everything beyond the retention limit is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := logging.Configure(logging.Config{LogPath: viper.GetString("log_path")})
		if err != nil {
			return err
		}
		defer closeLog()

		paths, err := filepath.Glob(filepath.Join(args[0], prunePattern))
		if err != nil {
			return err
		}
		sort.Slice(paths, func(i, j int) bool {
			return modTime(paths[i]).Before(modTime(paths[j]))
		})

		policy, err := checkpoint.NewRetentionPolicy(logger, pruneKeep)
		if err != nil {
			return err
		}
		for _, path := range paths {
			if err := policy.Register(path); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "deleted %d of %d files\n", len(paths)-len(policy.Retained()), len(paths))
		for _, kept := range policy.Retained() {
			fmt.Fprintf(out, "kept %s\n", kept)
		}
		return nil
	},
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", 2, "number of newest files to retain")
	pruneCmd.Flags().StringVar(&prunePattern, "pattern", "*.json", "glob pattern for weight files")
}
