// Package ocrmaster is the public entry point for the training support
// library: a session wires the logger, the run store, checkpoint
// retention, and artifact output together so a training script touches
// one handle instead of five packages.
package ocrmaster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/VitaliiAI/OCRMaster/internal/checkpoint"
	"github.com/VitaliiAI/OCRMaster/internal/eval"
	"github.com/VitaliiAI/OCRMaster/internal/logging"
	"github.com/VitaliiAI/OCRMaster/internal/model"
	"github.com/VitaliiAI/OCRMaster/internal/stats"
	"github.com/VitaliiAI/OCRMaster/internal/storage"
)

const (
	defaultDBPath        = "ocrmaster.db"
	defaultArtifactsDir  = "artifacts"
	defaultCheckpointDir = "weights"
	defaultKeep          = 2
)

// Options configures a Session. Zero values select the defaults.
type Options struct {
	StoreKind       string // "memory" (default) or "sqlite"
	DBPath          string
	ArtifactsDir    string
	CheckpointDir   string
	KeepCheckpoints int
	LogPath         string
	// LogWriter overrides the console log sink (stderr by default).
	LogWriter io.Writer
}

// Session owns the run-scoped support machinery for one training or
// evaluation process.
type Session struct {
	opts      Options
	logger    *slog.Logger
	closeLog  func() error
	store     storage.Store
	retention *checkpoint.RetentionPolicy
}

// NewSession builds and initializes a session. Close releases it.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.DBPath == "" {
		opts.DBPath = defaultDBPath
	}
	if opts.ArtifactsDir == "" {
		opts.ArtifactsDir = defaultArtifactsDir
	}
	if opts.CheckpointDir == "" {
		opts.CheckpointDir = defaultCheckpointDir
	}
	if opts.KeepCheckpoints == 0 {
		opts.KeepCheckpoints = defaultKeep
	}

	logger, closeLog, err := logging.Configure(logging.Config{LogPath: opts.LogPath, Writer: opts.LogWriter})
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(opts.StoreKind, opts.DBPath)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = closeLog()
		return nil, err
	}

	retention, err := checkpoint.NewRetentionPolicy(logger, opts.KeepCheckpoints)
	if err != nil {
		_ = storage.CloseIfSupported(store)
		_ = closeLog()
		return nil, err
	}

	return &Session{
		opts:      opts,
		logger:    logger,
		closeLog:  closeLog,
		store:     store,
		retention: retention,
	}, nil
}

// Logger exposes the session logger for callers that log around the
// library's own operations.
func (s *Session) Logger() *slog.Logger { return s.logger }

func (s *Session) Close() error {
	err := storage.CloseIfSupported(s.store)
	if closeErr := s.closeLog(); err == nil {
		err = closeErr
	}
	return err
}

// EvaluateRequest describes one validation pass.
type EvaluateRequest struct {
	RunID   string // generated when empty
	Dataset string
	Source  eval.BatchSource
	Predict eval.Predictor
	Scorers eval.Scorers
}

// EvaluateResponse reports the pass outcome and the run it was recorded
// under.
type EvaluateResponse struct {
	RunID  string
	Result eval.Result
}

// Evaluate runs the validation loop, appends the outcome to the run's
// stored history, and refreshes the run's artifact files.
func (s *Session) Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResponse, error) {
	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	result, err := eval.Loop(ctx, req.Source, req.Predict, req.Scorers, s.logger)
	if err != nil {
		return EvaluateResponse{}, err
	}

	record := model.EvalRecord{
		VersionedRecord: storage.Versioned(),
		RunID:           runID,
		Dataset:         req.Dataset,
		Accuracy:        result.Accuracy,
		WER:             result.WER,
		CER:             result.CER,
		Samples:         result.Samples,
		ElapsedMS:       result.Elapsed.Milliseconds(),
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
	}

	history, _, err := s.store.GetEvalHistory(ctx, runID)
	if err != nil {
		return EvaluateResponse{}, err
	}
	history = append(history, record)
	if err := s.store.SaveEvalHistory(ctx, runID, history); err != nil {
		return EvaluateResponse{}, err
	}

	if _, err := stats.WriteRunArtifacts(s.opts.ArtifactsDir, stats.RunArtifacts{
		Config: stats.RunConfig{
			RunID:           runID,
			Dataset:         req.Dataset,
			CheckpointDir:   s.opts.CheckpointDir,
			KeepCheckpoints: s.opts.KeepCheckpoints,
			LogPath:         s.opts.LogPath,
		},
		EvalHistory:   history,
		FinalAccuracy: record.Accuracy,
	}); err != nil {
		return EvaluateResponse{}, err
	}
	if err := stats.AppendRunIndex(s.opts.ArtifactsDir, stats.RunIndexEntry{
		RunID:         runID,
		Dataset:       req.Dataset,
		FinalAccuracy: record.Accuracy,
		Samples:       record.Samples,
		CreatedAtUTC:  record.CreatedAtUTC,
	}); err != nil {
		return EvaluateResponse{}, err
	}

	return EvaluateResponse{RunID: runID, Result: result}, nil
}

// SaveCheckpoint persists the model parameters for one epoch, registers
// the file with the retention policy, and records it in the store. The
// returned path names the written file; files evicted by the policy are
// already gone when this returns.
func (s *Session) SaveCheckpoint(ctx context.Context, runID string, epoch int, metric float64, params model.StateDict) (string, error) {
	if runID == "" {
		return "", fmt.Errorf("run id is required")
	}
	if err := os.MkdirAll(s.opts.CheckpointDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.opts.CheckpointDir, fmt.Sprintf("%s-epoch%03d.json", runID, epoch))
	if err := checkpoint.Save(path, params); err != nil {
		return "", err
	}
	if err := s.retention.Register(path); err != nil {
		return "", err
	}

	history, _, err := s.store.GetCheckpointHistory(ctx, runID)
	if err != nil {
		return "", err
	}
	history = append(history, model.CheckpointRecord{
		VersionedRecord: storage.Versioned(),
		RunID:           runID,
		Path:            path,
		Epoch:           epoch,
		Metric:          metric,
		SavedAtUTC:      time.Now().UTC().Format(time.RFC3339),
	})
	if err := s.store.SaveCheckpointHistory(ctx, runID, history); err != nil {
		return "", err
	}
	return path, nil
}

// WarmStart loads as much of the checkpoint at path into target as
// shapes allow, logging every parameter left at its initialized value.
func (s *Session) WarmStart(path string, target model.StateDict) (model.StateDict, error) {
	return checkpoint.LoadPretrained(path, target, s.logger)
}

// Runs lists every run id known to the store.
func (s *Session) Runs(ctx context.Context) ([]string, error) {
	return s.store.ListRunIDs(ctx)
}

// EvalHistory returns the recorded validation passes for a run.
func (s *Session) EvalHistory(ctx context.Context, runID string) ([]model.EvalRecord, bool, error) {
	return s.store.GetEvalHistory(ctx, runID)
}

// CheckpointHistory returns the recorded checkpoint saves for a run,
// including entries whose files the retention policy has since deleted.
func (s *Session) CheckpointHistory(ctx context.Context, runID string) ([]model.CheckpointRecord, bool, error) {
	return s.store.GetCheckpointHistory(ctx, runID)
}
