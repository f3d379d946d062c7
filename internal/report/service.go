package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

type Snapshotter interface {
	Snapshot(ctx context.Context, employeeID *uuid.UUID) (*reconcile.Snapshot, error)
}

// Service loads fresh data and renders reports from it.
type Service struct {
	snapshots Snapshotter
}

func NewService(snapshots Snapshotter) *Service {
	return &Service{snapshots: snapshots}
}

func (s *Service) Build(ctx context.Context, employeeID uuid.UUID, rng *reconcile.DateRange) (*Report, error) {
	snap, err := s.snapshots.Snapshot(ctx, &employeeID)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	return Build(snap, employeeID, rng)
}

// Render writes the report straight to w.
func (s *Service) Render(ctx context.Context, w io.Writer, employeeID uuid.UUID, rng *reconcile.DateRange, f Format) error {
	r, err := s.Build(ctx, employeeID, rng)
	if err != nil {
		return err
	}

	return r.Write(w, f)
}

// Export writes the report into outputDir and returns the file path.
func (s *Service) Export(ctx context.Context, employeeID uuid.UUID, rng *reconcile.DateRange, f Format, outputDir string) (string, error) {
	r, err := s.Build(ctx, employeeID, rng)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, r.Filename(f))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := r.Write(file, f); err != nil {
		return "", err
	}

	return path, nil
}
