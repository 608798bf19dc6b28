package response

import (
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/usecase/commands"
)

type CSRFTokenResponse struct {
	Token string `json:"csrfToken"`
}

type StartScanResponse struct {
	Scanning  bool   `json:"scanning"`
	RunID     string `json:"runId"`
	BatchSize int    `json:"batchSize"`
	Message   string `json:"message"`
}

// ScanProgressResponse is returned while the scan is running. Zero counters are
// still sent.
type ScanProgressResponse struct {
	ScanComplete bool   `json:"scanComplete"`
	Phase        string `json:"phase"`
	Scanned      int    `json:"scanned"`
	Found        int    `json:"found"`
	BatchFound   int    `json:"batchFound"`
	Message      string `json:"message"`
}

// ScanCompleteResponse is the terminal scan payload with the grand total and
// the batch size the client should delete with.
type ScanCompleteResponse struct {
	ScanComplete bool           `json:"scanComplete"`
	Phase        string         `json:"phase"`
	Total        int            `json:"total"`
	Counts       map[string]int `json:"counts"`
	BatchSize    int            `json:"batchSize"`
	Message      string         `json:"message"`
}

type DeletionBatchResponse struct {
	Kind      string   `json:"kind,omitempty"`
	Deleted   int      `json:"deleted"`
	Remaining int      `json:"remaining"`
	Log       []string `json:"log"`
	Complete  bool     `json:"complete"`
}

func FromStartScan(r *commands.StartScanResult) StartScanResponse {
	return StartScanResponse{
		Scanning:  true,
		RunID:     r.RunID.String(),
		BatchSize: r.BatchSize.Int(),
		Message:   r.Message,
	}
}

// FromScanBatch returns a ScanProgressResponse or a ScanCompleteResponse.
func FromScanBatch(r *commands.ScanBatchResult) any {
	if !r.Complete {
		return ScanProgressResponse{
			Phase:      r.Phase.String(),
			Scanned:    r.Scanned,
			Found:      r.Found,
			BatchFound: r.BatchFound,
			Message:    r.Message,
		}
	}

	counts := make(map[string]int, len(record.Kinds))
	for _, kind := range record.Kinds {
		counts[kind.String()] = r.Counts[kind]
	}
	return ScanCompleteResponse{
		ScanComplete: true,
		Phase:        r.Phase.String(),
		Total:        r.Total,
		Counts:       counts,
		BatchSize:    r.BatchSize.Int(),
		Message:      r.Message,
	}
}

func FromDeletion(r *commands.DeletionResult) DeletionBatchResponse {
	log := r.Log
	if log == nil {
		log = []string{}
	}
	return DeletionBatchResponse{
		Kind:      r.Kind.String(),
		Deleted:   r.Deleted,
		Remaining: r.Remaining,
		Log:       log,
		Complete:  r.Complete,
	}
}
