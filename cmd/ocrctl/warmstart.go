package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VitaliiAI/OCRMaster/internal/checkpoint"
)

var (
	warmstartTarget     string
	warmstartPretrained string
	warmstartOut        string
)

var warmstartCmd = &cobra.Command{
	Use:   "warmstart",
	Short: "Merge a pretrained checkpoint into a freshly initialized one",
	Long: `Copies every parameter whose name and shape match from the
pretrained checkpoint into the target checkpoint, leaving the rest at
their initialized values, and writes the merged result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := checkpoint.Load(warmstartTarget)
		if err != nil {
			return fmt.Errorf("load target: %w", err)
		}
		source, err := checkpoint.Load(warmstartPretrained)
		if err != nil {
			return fmt.Errorf("load pretrained: %w", err)
		}

		merged, skipped := checkpoint.Merge(target, source)
		if err := checkpoint.Save(warmstartOut, merged); err != nil {
			return fmt.Errorf("save merged: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, skip := range skipped {
			fmt.Fprintf(out, "not loaded: %s (%s)\n", skip.Key, skip.Reason)
		}
		fmt.Fprintf(out, "transferred %d/%d parameters to %s\n", len(merged)-len(skipped), len(merged), warmstartOut)
		return nil
	},
}

func init() {
	warmstartCmd.Flags().StringVar(&warmstartTarget, "target", "", "checkpoint with the new model's layout (required)")
	warmstartCmd.Flags().StringVar(&warmstartPretrained, "pretrained", "", "checkpoint to pull weights from (required)")
	warmstartCmd.Flags().StringVar(&warmstartOut, "out", "", "path for the merged checkpoint (required)")
	_ = warmstartCmd.MarkFlagRequired("target")
	_ = warmstartCmd.MarkFlagRequired("pretrained")
	_ = warmstartCmd.MarkFlagRequired("out")
}
