package commands

import (
	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"

	"github.com/google/uuid"
)

type StartScanResult struct {
	RunID     uuid.UUID
	BatchSize criteria.BatchSize
	Message   string
}

// ScanBatchResult carries per-phase progress while Complete is false and the
// grand total once it is true.
type ScanBatchResult struct {
	Complete   bool
	RunID      uuid.UUID
	Phase      scan.Phase
	Scanned    int
	Found      int
	BatchFound int
	Total      int
	Counts     map[record.Kind]int
	BatchSize  criteria.BatchSize
	Message    string
}

type DeletionResult struct {
	Kind      record.Kind
	Deleted   int
	Remaining int
	Log       []string
	Complete  bool
}
