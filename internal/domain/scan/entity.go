package scan

import (
	"slices"
	"time"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"

	"github.com/google/uuid"
)

// Progress is the cursor and running totals of one phase.
type Progress struct {
	Offset  int `json:"offset"`
	Scanned int `json:"scanned"`
	Matched int `json:"matched"`
}

// State is the scan record carried between scan-batch calls. Phases only move
// forward and counters never decrease.
type State struct {
	RunID     uuid.UUID         `json:"run_id"`
	Phase     Phase             `json:"phase"`
	Users     Progress          `json:"users"`
	Orders    Progress          `json:"orders"`
	Coupons   Progress          `json:"coupons"`
	PageSize  int               `json:"page_size"`
	Criteria  criteria.Criteria `json:"criteria"`
	StartedAt time.Time         `json:"started_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewState(runID uuid.UUID, c criteria.Criteria, pageSize int, now time.Time) (*State, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	return &State{
		RunID:     runID,
		Phase:     FirstPhase(c),
		PageSize:  pageSize,
		Criteria:  c,
		StartedAt: now,
		UpdatedAt: now,
	}, nil
}

// FirstPhase is always PhaseUsers; kept symmetric with NextPhase.
func FirstPhase(c criteria.Criteria) Phase {
	return nextEnabled(c, -1)
}

// NextPhase returns the phase following p, skipping phases the criteria disable.
func NextPhase(c criteria.Criteria, p Phase) Phase {
	idx := slices.Index(phaseOrder, p)
	if idx < 0 || p == PhaseDone {
		return PhaseDone
	}
	return nextEnabled(c, idx)
}

func nextEnabled(c criteria.Criteria, from int) Phase {
	for _, p := range phaseOrder[from+1:] {
		kind, ok := p.Kind()
		if !ok {
			return PhaseDone
		}
		if c.Enabled(kind) {
			return p
		}
	}
	return PhaseDone
}

func (s *State) Progress(kind record.Kind) *Progress {
	switch kind {
	case record.KindUser:
		return &s.Users
	case record.KindOrder:
		return &s.Orders
	case record.KindCoupon:
		return &s.Coupons
	default:
		return nil
	}
}

// Current returns the progress of the active phase; nil once done.
func (s *State) Current() *Progress {
	kind, ok := s.Phase.Kind()
	if !ok {
		return nil
	}
	return s.Progress(kind)
}

func (s *State) IsDone() bool {
	return s.Phase == PhaseDone
}

// Advance records one scanned page of the active phase. The cursor always moves
// by the page size; exhausted moves the state to the next enabled phase.
func (s *State) Advance(scanned, matched int, exhausted bool, now time.Time) error {
	p := s.Current()
	if p == nil {
		return ErrScanFinished
	}
	p.Offset += s.PageSize
	p.Scanned += scanned
	p.Matched += matched
	if exhausted {
		s.Phase = NextPhase(s.Criteria, s.Phase)
	}
	s.UpdatedAt = now
	return nil
}
