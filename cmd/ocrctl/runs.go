package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VitaliiAI/OCRMaster/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "List recorded evaluation runs",
	Long: `Without arguments, lists every run recorded in the store with its
latest metrics. With a run id, prints that run's full evaluation and
checkpoint history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := storage.NewStore(viper.GetString("store"), viper.GetString("db_path"))
		if err != nil {
			return err
		}
		defer func() { _ = storage.CloseIfSupported(store) }()
		if err := store.Init(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			runID := args[0]
			evals, ok, err := store.GetEvalHistory(ctx, runID)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "evaluations for %s:\n", runID)
				for _, record := range evals {
					fmt.Fprintf(out, "  %s acc=%.4f wer=%.4f cer=%.4f samples=%d\n",
						record.CreatedAtUTC, record.Accuracy, record.WER, record.CER, record.Samples)
				}
			}
			ckpts, ok, err := store.GetCheckpointHistory(ctx, runID)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "checkpoints for %s:\n", runID)
				for _, record := range ckpts {
					fmt.Fprintf(out, "  epoch=%d metric=%.4f path=%s\n", record.Epoch, record.Metric, record.Path)
				}
			}
			return nil
		}

		runIDs, err := store.ListRunIDs(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RUN\tEVALS\tLAST ACC\tLAST WER\tLAST CER")
		for _, runID := range runIDs {
			evals, ok, err := store.GetEvalHistory(ctx, runID)
			if err != nil {
				return err
			}
			if !ok || len(evals) == 0 {
				fmt.Fprintf(w, "%s\t0\t-\t-\t-\n", runID)
				continue
			}
			last := evals[len(evals)-1]
			fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\n", runID, len(evals), last.Accuracy, last.WER, last.CER)
		}
		return w.Flush()
	},
}
