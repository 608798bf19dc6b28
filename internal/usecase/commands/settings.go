package commands

import (
	"context"
	"log/slog"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"
)

type SettingsCommands interface {
	SaveSettings(ctx context.Context, in criteria.Input) (criteria.Criteria, error)
}

type settingsCommandsImpl struct {
	store  shared.CriteriaStore
	logger *slog.Logger
}

func NewSettingsCommands(store shared.CriteriaStore, logger *slog.Logger) SettingsCommands {
	return &settingsCommandsImpl{store: store, logger: logger}
}

// SaveSettings validates and stores the criteria. A scan already in progress
// keeps the criteria it was started with.
func (uc *settingsCommandsImpl) SaveSettings(ctx context.Context, in criteria.Input) (criteria.Criteria, error) {
	c, err := criteria.NewCriteria(in)
	if err != nil {
		return criteria.Criteria{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := uc.store.Save(ctx, c); err != nil {
		return criteria.Criteria{}, errs.Wrap(err, "save criteria")
	}

	uc.logger.Info("cleanup settings saved",
		"delete_no_name", c.DeleteNoName,
		"delete_unlisted_domains", c.DeleteUnlistedDomains,
		"allowed_domains", len(c.AllowedDomains),
		"delete_role", c.DeleteByRole,
		"orders_enabled", c.OrdersEnabled(),
		"coupons_enabled", c.CouponsEnabled(),
		"batch_size", c.BatchSize.Int())
	return c, nil
}
