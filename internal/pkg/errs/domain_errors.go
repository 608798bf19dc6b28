package errs

// Marks attached with Mark so callers can classify a failure without
// knowing which layer produced it.
var (
	// Input rejected by a domain rule; mapped to 400.
	ErrDomainValidation = New("domain validation error")

	// Badger read, write or decode failure in the scan state, pending IDs or settings.
	ErrStateStoreFailed = New("state store operation failed")
)
