package criteria

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidBatchSize  = errors.New("batch size must be between 1 and 1000")
	ErrAdministratorRole = errors.New("administrator role cannot be selected for deletion")
)

// BatchSize is the number of records deleted per run-deletion-batch call.
type BatchSize int

const (
	DefaultBatchSize BatchSize = 100
	MaxBatchSize     BatchSize = 1000
)

var allowedBatchSizes = []BatchSize{50, 100, 250, 500, 1000}

// NewBatchSize coerces anything outside the allowed set to DefaultBatchSize.
func NewBatchSize(n int) BatchSize {
	b := BatchSize(n)
	if !b.IsValid() {
		return DefaultBatchSize
	}
	return b
}

// ParseBatchSize bounds-checks a client supplied size. Clients echo the
// configured size, but any size up to MaxBatchSize is accepted.
func ParseBatchSize(n int) (BatchSize, error) {
	if n < 1 || n > int(MaxBatchSize) {
		return 0, ErrInvalidBatchSize
	}
	return BatchSize(n), nil
}

func AllowedBatchSizes() []BatchSize {
	return slices.Clone(allowedBatchSizes)
}

func (b BatchSize) IsValid() bool {
	return slices.Contains(allowedBatchSizes, b)
}

func (b BatchSize) Int() int {
	return int(b)
}

// ParseDomains splits comma separated entries, trims and lower-cases them,
// and drops empties and duplicates while keeping first-seen order.
func ParseDomains(entries ...string) []string {
	var out []string
	for _, entry := range entries {
		for _, d := range strings.Split(entry, ",") {
			d = strings.ToLower(strings.TrimSpace(d))
			d = strings.TrimPrefix(d, "@")
			if d == "" || slices.Contains(out, d) {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}

func normalizeStatuses(statuses []string) []string {
	var out []string
	for _, s := range statuses {
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
