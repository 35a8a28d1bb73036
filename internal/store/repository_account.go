// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

const accountsTable = "accounts"

var accountColumns = []string{
	"account_id",
	"username",
	"password_hash",
	"email",
	"created_at",
	"last_active_at",
}

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository returns an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, log *logger.Logger) AccountRepository {
	return &accountRepository{
		db:     db,
		logger: log,
	}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	account.CreatedAt = time.Now().UTC()

	query, args, err := r.db.builder.
		Insert(accountsTable).
		Columns("username", "password_hash", "email", "created_at").
		Values(account.Username, account.PasswordHash, account.Email, account.CreatedAt).
		Suffix("RETURNING account_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.AccountID)
	if err != nil {
		if r.db.classifier.Classify(err) == UniqueViolation {
			return models.Account{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindAccountByUsername", sq.Eq{"username": username})
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindAccountByID", sq.Eq{"account_id": accountID})
}

func (r *accountRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var lastActive sql.NullTime
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(
			&account.AccountID,
			&account.Username,
			&account.PasswordHash,
			&account.Email,
			&account.CreatedAt,
			&lastActive,
		)
		if scanErr != nil {
			return scanErr
		}
		if lastActive.Valid {
			at := lastActive.Time
			account.LastActiveAt = &at
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *accountRepository) TouchLastActive(ctx context.Context, at time.Time, accountIDs ...int64) (int64, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(accountsTable).
		Set("last_active_at", at.UTC()).
		Where(sq.Eq{"account_id": accountIDs}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.TouchLastActive").Msg("error building update query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "accountRepository.TouchLastActive").Msg("error updating last_active_at")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
