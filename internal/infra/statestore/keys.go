package statestore

import "bulk-cleanup/internal/domain/record"

const (
	keyScanState = "cleanup:scan_state"
	keySettings  = "cleanup:settings"
	keyPending   = "cleanup:pending:"
)

func pendingKey(kind record.Kind) string {
	return keyPending + kind.String()
}
