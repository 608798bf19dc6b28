package repository

import (
	"context"
	"errors"
	"log/slog"

	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/infra"
	"bulk-cleanup/internal/infra/db"
	"bulk-cleanup/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const listOrdersPage = `
SELECT id, status
FROM orders
WHERE status = ANY($1)
ORDER BY id
LIMIT $2 OFFSET $3`

const findOrderByID = `SELECT id, status FROM orders WHERE id = $1`

const (
	deleteOrderMeta = `DELETE FROM order_meta WHERE order_id = $1`
	deleteOrder     = `DELETE FROM orders WHERE id = $1`
)

type OrderRepository struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewOrderRepository(uow shared.UnitOfWork, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		uow:    uow,
		logger: logger,
	}
}

func (r *OrderRepository) ListPage(ctx context.Context, statuses []string, offset, limit int) ([]record.Order, error) {
	var orders []record.Order
	err := r.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		rows, err := q.Query(ctx, listOrdersPage, statuses, limit, offset)
		if err != nil {
			return err
		}
		orders, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (record.Order, error) {
			return scanOrder(row)
		})
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*record.Order, error) {
	var o record.Order
	err := r.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		o, err = scanOrder(q.QueryRow(ctx, findOrderByID, id))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, markNotFound(infra.WrapRepoErr(r.logger, infra.KindNotFound, "order not found", err))
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find order by ID", err)
	}
	return &o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteWithMeta(ctx, r.uow, deleteOrderMeta, deleteOrder, id)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete order", err)
	}
	return deleted, nil
}

func scanOrder(row pgx.Row) (record.Order, error) {
	var o record.Order
	err := row.Scan(&o.ID, &o.Status)
	return o, err
}

// deleteWithMeta removes the metadata rows then the record itself in one
// transaction and reports whether the record row was deleted.
func deleteWithMeta(ctx context.Context, uow shared.UnitOfWork, metaSQL, rowSQL string, id int64) (bool, error) {
	err := uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.Exec(ctx, metaSQL, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, rowSQL, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return errNothingDeleted
		}
		return nil
	})
	if errors.Is(err, errNothingDeleted) {
		return false, nil
	}
	return err == nil, err
}
