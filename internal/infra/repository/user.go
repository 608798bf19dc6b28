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

const (
	metaFirstName = "first_name"
	metaLastName  = "last_name"
)

const selectUserColumns = `
SELECT u.id, u.login, u.email, u.roles,
       COALESCE(fn.meta_value, ''), COALESCE(ln.meta_value, '')
FROM users u
LEFT JOIN user_meta fn ON fn.user_id = u.id AND fn.meta_key = '` + metaFirstName + `'
LEFT JOIN user_meta ln ON ln.user_id = u.id AND ln.meta_key = '` + metaLastName + `'`

const listUsersPage = selectUserColumns + `
WHERE NOT ($1 = ANY(u.roles))
ORDER BY u.id
LIMIT $2 OFFSET $3`

const findUserByID = selectUserColumns + `
WHERE u.id = $1`

const deleteUserMeta = `DELETE FROM user_meta WHERE user_id = $1`

// Administrators are never matched, whatever the caller checked before.
const deleteUser = `DELETE FROM users WHERE id = $1 AND NOT ($2 = ANY(roles))`

type UserRepository struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewUserRepository(uow shared.UnitOfWork, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		uow:    uow,
		logger: logger,
	}
}

func (r *UserRepository) ListPage(ctx context.Context, offset, limit int) ([]record.User, error) {
	var users []record.User
	err := r.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		rows, err := q.Query(ctx, listUsersPage, record.RoleAdministrator, limit, offset)
		if err != nil {
			return err
		}
		users, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (record.User, error) {
			return scanUser(row)
		})
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list users", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*record.User, error) {
	var u record.User
	err := r.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		u, err = scanUser(q.QueryRow(ctx, findUserByID, id))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, markNotFound(infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err))
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find user by ID", err)
	}
	return &u, nil
}

// Delete removes the user's metadata and row in one transaction. The
// metadata delete is rolled back when the row is gone or protected.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.Exec(ctx, deleteUserMeta, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, deleteUser, id, record.RoleAdministrator)
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
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete user", err)
	}
	return true, nil
}

func scanUser(row pgx.Row) (record.User, error) {
	var u record.User
	err := row.Scan(&u.ID, &u.Login, &u.Email, &u.Roles, &u.FirstName, &u.LastName)
	return u, err
}
