// Package permdb contains permission grant CRUD functionality.
package permdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Store manages the set of APIs for permission database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (permbus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new grant into the database.
func (s *Store) Create(ctx context.Context, grt permbus.Grant) error {
	const q = `
	INSERT INTO user_permissions
		(user_id, permission, granted_by, created_at)
	VALUES
		(:user_id, :permission, :granted_by, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBGrant(grt)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", permbus.ErrAlreadyExists)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a grant from the database.
func (s *Store) Delete(ctx context.Context, grt permbus.Grant) error {
	const q = `
	DELETE FROM
		user_permissions
	WHERE
		user_id = :user_id AND permission = :permission`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBGrant(grt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByUser lists the grants held by a user.
func (s *Store) QueryByUser(ctx context.Context, userID uuid.UUID) ([]permbus.Grant, error) {
	data := struct {
		ID string `db:"user_id"`
	}{
		ID: userID.String(),
	}

	const q = `
	SELECT
		user_id, permission, granted_by, created_at
	FROM
		user_permissions
	WHERE
		user_id = :user_id
	ORDER BY
		permission`

	var dbGrts []grantDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbGrts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusGrants(dbGrts)
}
