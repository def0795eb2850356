// Package auditdb contains audit trail persistence.
package auditdb

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Store manages the set of APIs for audit database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (auditbus.Storer, error) {
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

// Create inserts a new audit record into the database.
func (s *Store) Create(ctx context.Context, ent auditbus.Entry) error {
	const q = `
	INSERT INTO audit_log
		(entry_id, actor_id, action, entity, entity_id, notes, created_at)
	VALUES
		(:entry_id, :actor_id, :action, :entity, :entity_id, :notes, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBEntry(ent)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves audit records from the database, newest first.
func (s *Store) Query(ctx context.Context, filter auditbus.QueryFilter, page page.Page) ([]auditbus.Entry, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		al.entry_id, al.actor_id, al.action, al.entity, al.entity_id, al.notes, al.created_at
	FROM
		audit_log AS al`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)
	buf.WriteString(" ORDER BY al.created_at DESC")
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbEnts []entryDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbEnts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusEntries(dbEnts), nil
}

// Count returns the total number of audit records in the DB.
func (s *Store) Count(ctx context.Context, filter auditbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		audit_log AS al`

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

func applyFilter(filter auditbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ActorID != nil {
		data["actor_id"] = *filter.ActorID
		wc = append(wc, "al.actor_id = :actor_id")
	}

	if filter.Action != nil {
		data["action"] = *filter.Action
		wc = append(wc, "al.action = :action")
	}

	if filter.Entity != nil {
		data["entity"] = *filter.Entity
		wc = append(wc, "al.entity = :entity")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}

type entryDB struct {
	ID        uuid.UUID `db:"entry_id"`
	ActorID   uuid.UUID `db:"actor_id"`
	Action    string    `db:"action"`
	Entity    string    `db:"entity"`
	EntityID  string    `db:"entity_id"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

func toDBEntry(ent auditbus.Entry) entryDB {
	return entryDB{
		ID:        ent.ID,
		ActorID:   ent.ActorID,
		Action:    ent.Action,
		Entity:    ent.Entity,
		EntityID:  ent.EntityID,
		Notes:     ent.Notes,
		CreatedAt: ent.CreatedAt.UTC(),
	}
}

func toBusEntries(dbEnts []entryDB) []auditbus.Entry {
	ents := make([]auditbus.Entry, len(dbEnts))

	for i, dbEnt := range dbEnts {
		ents[i] = auditbus.Entry{
			ID:        dbEnt.ID,
			ActorID:   dbEnt.ActorID,
			Action:    dbEnt.Action,
			Entity:    dbEnt.Entity,
			EntityID:  dbEnt.EntityID,
			Notes:     dbEnt.Notes,
			CreatedAt: dbEnt.CreatedAt.In(time.Local),
		}
	}

	return ents
}
