package repository

import (
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"
)

func markNotFound(err error) error {
	return errs.Mark(err, shared.ErrRecordNotFound)
}

// errNothingDeleted rolls back a delete transaction whose target row was not removed.
var errNothingDeleted = errs.New("nothing deleted")
