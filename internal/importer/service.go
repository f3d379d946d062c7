package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type WorkDays interface {
	ImportBatch(ctx context.Context, employeeID uuid.UUID, params []workday.AddOrUpdateParams) (*workday.ImportResult, error)
	CreateBatch(ctx context.Context, employeeID uuid.UUID, params []workday.AddOrUpdateParams) ([]*workday.WorkDay, error)
}

type Service struct {
	parser   *Parser
	workDays WorkDays
}

func NewService(workDays WorkDays) *Service {
	return &Service{
		parser:   NewParser(),
		workDays: workDays,
	}
}

// Preview parses r without writing anything.
func (s *Service) Preview(r io.Reader) (*Result, error) {
	return s.parser.Parse(r)
}

type Outcome struct {
	Parsed *Result
	Import *workday.ImportResult
}

// Import parses r and stores the rows unless some dates already have a
// record. Conflicts are returned for the caller to confirm with Confirm.
func (s *Service) Import(ctx context.Context, employeeID uuid.UUID, r io.Reader) (*Outcome, error) {
	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	result, err := s.workDays.ImportBatch(ctx, employeeID, parsed.Rows)
	if err != nil {
		return nil, fmt.Errorf("import work days: %w", err)
	}

	return &Outcome{Parsed: parsed, Import: result}, nil
}

// Confirm stores rows, overwriting any unpaid record on the same date.
func (s *Service) Confirm(ctx context.Context, employeeID uuid.UUID, rows []workday.AddOrUpdateParams) ([]*workday.WorkDay, error) {
	wds, err := s.workDays.CreateBatch(ctx, employeeID, rows)
	if err != nil {
		return nil, fmt.Errorf("create work days: %w", err)
	}

	return wds, nil
}
