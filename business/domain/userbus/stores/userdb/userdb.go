// Package userdb contains user related CRUD functionality.
package userdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// selectUser aggregates the role assignment set into a comma separated
// column so a user always arrives with their complete role set.
const selectUser = `
	SELECT
		u.user_id, u.org_id, u.name, u.email, u.password AS password_hash, u.phone,
		u.currency, u.enabled, u.created_at, u.updated_at,
		COALESCE((SELECT string_agg(ur.role_name, ',' ORDER BY ur.role_name)
			FROM user_roles AS ur WHERE ur.user_id = u.user_id), '') AS roles
	FROM
		users AS u`

// Store manages the set of APIs for user database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
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

// Create inserts a new user and their role assignments into the database.
func (s *Store) Create(ctx context.Context, usr userbus.User) error {
	const q = `
	INSERT INTO users
		(user_id, org_id, name, email, password, phone, currency, enabled, created_at, updated_at)
	VALUES
		(:user_id, :org_id, :name, :email, :password_hash, :phone, :currency, :enabled, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUser(usr)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			switch dupErr.Column {
			case "email", "uq_users_email":
				return fmt.Errorf("namedexeccontext: %w", userbus.ErrUniqueEmail)
			case "phone", "uq_users_phone":
				return fmt.Errorf("namedexeccontext: %w", userbus.ErrUniquePhone)
			}
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if err := s.insertRoles(ctx, usr); err != nil {
		return err
	}

	return nil
}

// Update replaces a user document in the database, including their role
// assignment set.
func (s *Store) Update(ctx context.Context, usr userbus.User) error {
	const q = `
	UPDATE
		users
	SET
		name = :name,
		email = :email,
		phone = :phone,
		currency = :currency,
		password = :password_hash,
		enabled = :enabled,
		updated_at = :updated_at
	WHERE
		user_id = :user_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUser(usr)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			switch dupErr.Column {
			case "email", "uq_users_email":
				return userbus.ErrUniqueEmail
			case "phone", "uq_users_phone":
				return userbus.ErrUniquePhone
			}
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	const qDel = `
	DELETE FROM
		user_roles
	WHERE
		user_id = :user_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, qDel, toDBUser(usr)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if err := s.insertRoles(ctx, usr); err != nil {
		return err
	}

	return nil
}

// Delete removes a user from the database. Role assignments cascade.
func (s *Store) Delete(ctx context.Context, usr userbus.User) error {
	const q = `
	DELETE FROM
		users
	WHERE
		user_id = :user_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUser(usr)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing users from the database.
func (s *Store) Query(ctx context.Context, filter userbus.QueryFilter, orderBy order.By, page page.Page) ([]userbus.User, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	buf := bytes.NewBufferString(selectUser)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbUsrs []userDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbUsrs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusUsers(dbUsrs)
}

// Count returns the total number of users in the DB.
func (s *Store) Count(ctx context.Context, filter userbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		users AS u`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, buf.String(), data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified user from the database.
func (s *Store) QueryByID(ctx context.Context, userID uuid.UUID) (userbus.User, error) {
	data := struct {
		ID string `db:"user_id"`
	}{
		ID: userID.String(),
	}

	q := selectUser + `
	WHERE
		u.user_id = :user_id`

	var dbUsr userDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbUsr); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return userbus.User{}, fmt.Errorf("db: %w", userbus.ErrNotFound)
		}
		return userbus.User{}, fmt.Errorf("db: %w", err)
	}

	return toBusUser(dbUsr)
}

// QueryByEmail gets the specified user from the database by email.
func (s *Store) QueryByEmail(ctx context.Context, email mail.Address) (userbus.User, error) {
	data := struct {
		Email string `db:"email"`
	}{
		Email: email.Address,
	}

	q := selectUser + `
	WHERE
		u.email = :email`

	var dbUsr userDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbUsr); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return userbus.User{}, fmt.Errorf("db: %w", userbus.ErrNotFound)
		}
		return userbus.User{}, fmt.Errorf("db: %w", err)
	}

	return toBusUser(dbUsr)
}

// CountByRole returns the number of users holding the specified role.
func (s *Store) CountByRole(ctx context.Context, r role.Role) (int, error) {
	data := struct {
		Role string `db:"role_name"`
	}{
		Role: r.String(),
	}

	const q = `
	SELECT
		count(1)
	FROM
		user_roles
	WHERE
		role_name = :role_name`

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

func (s *Store) insertRoles(ctx context.Context, usr userbus.User) error {
	const q = `
	INSERT INTO user_roles
		(user_id, role_name)
	VALUES
		(:user_id, :role_name)
	ON CONFLICT (user_id, role_name) DO NOTHING`

	for _, r := range usr.Roles {
		data := struct {
			UserID string `db:"user_id"`
			Role   string `db:"role_name"`
		}{
			UserID: usr.ID.String(),
			Role:   r.String(),
		}

		if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
			return fmt.Errorf("namedexeccontext: %w", err)
		}
	}

	return nil
}
