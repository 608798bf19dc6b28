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

const listCouponsPage = `
SELECT id, code, status
FROM coupons
WHERE status = ANY($1)
ORDER BY id
LIMIT $2 OFFSET $3`

const findCouponByID = `SELECT id, code, status FROM coupons WHERE id = $1`

const (
	deleteCouponMeta = `DELETE FROM coupon_meta WHERE coupon_id = $1`
	deleteCoupon     = `DELETE FROM coupons WHERE id = $1`
)

type CouponRepository struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCouponRepository(uow shared.UnitOfWork, logger *slog.Logger) *CouponRepository {
	return &CouponRepository{
		uow:    uow,
		logger: logger,
	}
}

func (r *CouponRepository) ListPage(ctx context.Context, statuses []string, offset, limit int) ([]record.Coupon, error) {
	var coupons []record.Coupon
	err := r.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		rows, err := q.Query(ctx, listCouponsPage, statuses, limit, offset)
		if err != nil {
			return err
		}
		coupons, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (record.Coupon, error) {
			return scanCoupon(row)
		})
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list coupons", err)
	}
	return coupons, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id int64) (*record.Coupon, error) {
	var c record.Coupon
	err := r.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		c, err = scanCoupon(q.QueryRow(ctx, findCouponByID, id))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, markNotFound(infra.WrapRepoErr(r.logger, infra.KindNotFound, "coupon not found", err))
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find coupon by ID", err)
	}
	return &c, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteWithMeta(ctx, r.uow, deleteCouponMeta, deleteCoupon, id)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete coupon", err)
	}
	return deleted, nil
}

func scanCoupon(row pgx.Row) (record.Coupon, error) {
	var c record.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.Status)
	return c, err
}
