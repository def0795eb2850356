// Package dbadminbus provides the super-admin ops console: generic access
// to an allowlisted set of tables, column introspection and enum
// management. Table and column names are validated before they are placed
// in SQL text; values always travel as bind parameters.
package dbadminbus

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// Set of errors for ops console operations.
var (
	ErrTableNotAllowed = errors.New("table is not in the ops console allowlist")
	ErrTableReadOnly   = errors.New("table is read-only in the ops console")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrRowNotFound     = errors.New("row not found")
	ErrBadIdentifier   = errors.New("invalid identifier")
)

var identRegEx = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// registry is the fixed allowlist of tables the console can touch. The
// audit log stays read-only so the trail cannot be rewritten from the
// console it records.
var registry = map[string]Table{
	"organizations":       {Name: "organizations", PrimaryKey: "org_id", Mutable: true},
	"users":               {Name: "users", PrimaryKey: "user_id", Mutable: true},
	"properties":          {Name: "properties", PrimaryKey: "property_id", Mutable: true},
	"units":               {Name: "units", PrimaryKey: "unit_id", Mutable: true},
	"tenants":             {Name: "tenants", PrimaryKey: "tenant_id", Mutable: true},
	"invoices":            {Name: "invoices", PrimaryKey: "invoice_id", Mutable: true},
	"payments":            {Name: "payments", PrimaryKey: "payment_id", Mutable: true},
	"qr_payment_requests": {Name: "qr_payment_requests", PrimaryKey: "request_id", Mutable: true},
	"maintenance_tickets": {Name: "maintenance_tickets", PrimaryKey: "ticket_id", Mutable: true},
	"audit_log":           {Name: "audit_log", PrimaryKey: "entry_id", Mutable: false},
}

// Core manages the set of APIs for ops console access.
type Core struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewCore constructs a core for ops console access.
func NewCore(log *logger.Logger, db *sqlx.DB) *Core {
	return &Core{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Core value replacing the sqlx DB value with a
// sqlx DB value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	return &Core{
		log: c.log,
		db:  ec,
	}, nil
}

// Tables lists the allowlisted tables in name order.
func (c *Core) Tables() []Table {
	tbls := make([]Table, 0, len(registry))
	for _, tbl := range registry {
		tbls = append(tbls, tbl)
	}

	sort.Slice(tbls, func(i, j int) bool {
		return tbls[i].Name < tbls[j].Name
	})

	return tbls
}

// Columns introspects the columns of an allowlisted table.
func (c *Core) Columns(ctx context.Context, table string) ([]Column, error) {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.columns")
	defer span.End()

	tbl, err := c.lookup(table)
	if err != nil {
		return nil, err
	}

	const q = `
	SELECT
		column_name, data_type, is_nullable, COALESCE(column_default, '')
	FROM
		information_schema.columns
	WHERE
		table_schema = 'public' AND table_name = $1
	ORDER BY
		ordinal_position`

	rows, err := c.db.QueryContext(ctx, q, tbl.Name)
	if err != nil {
		return nil, fmt.Errorf("querycontext: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var col Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		col.Nullable = nullable == "YES"
		cols = append(cols, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return cols, nil
}

// QueryRows reads one page of rows from an allowlisted table with optional
// equality filters and ordering, plus the exact total for the filter.
func (c *Core) QueryRows(ctx context.Context, table string, filters map[string]any, orderBy string, desc bool, pg page.Page) (RowPage, error) {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.queryRows")
	defer span.End()

	tbl, err := c.lookup(table)
	if err != nil {
		return RowPage{}, err
	}

	cols, err := c.columnSet(ctx, tbl)
	if err != nil {
		return RowPage{}, err
	}

	where, args, err := buildWhere(cols, filters)
	if err != nil {
		return RowPage{}, err
	}

	order := tbl.PrimaryKey
	if orderBy != "" {
		if _, exists := cols[orderBy]; !exists {
			return RowPage{}, fmt.Errorf("%q: %w", orderBy, ErrUnknownColumn)
		}
		order = orderBy
	}

	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	q := fmt.Sprintf("SELECT * FROM %s%s ORDER BY %s %s OFFSET %d ROWS FETCH NEXT %d ROWS ONLY",
		tbl.Name, where, order, dir, (pg.Number()-1)*pg.RowsPerPage(), pg.RowsPerPage())

	c.log.Infoc(ctx, 5, "database.dbadmin.query", "query", q)

	rows, err := c.db.QueryxContext(ctx, q, args...)
	if err != nil {
		return RowPage{}, fmt.Errorf("queryxcontext: %w", err)
	}
	defer rows.Close()

	result := RowPage{Rows: []map[string]any{}}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return RowPage{}, fmt.Errorf("mapscan: %w", err)
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return RowPage{}, fmt.Errorf("rows: %w", err)
	}

	countQ := fmt.Sprintf("SELECT count(1) FROM %s%s", tbl.Name, where)
	if err := c.db.QueryRowxContext(ctx, countQ, args...).Scan(&result.Total); err != nil {
		return RowPage{}, fmt.Errorf("count: %w", err)
	}

	return result, nil
}

// InsertRow inserts a row with the given column values into an allowlisted
// mutable table.
func (c *Core) InsertRow(ctx context.Context, table string, values map[string]any) error {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.insertRow")
	defer span.End()

	tbl, err := c.mutable(table)
	if err != nil {
		return err
	}

	cols, err := c.columnSet(ctx, tbl)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		if _, exists := cols[name]; !exists {
			return fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[name]
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tbl.Name, strings.Join(names, ", "), strings.Join(placeholders, ", "))

	c.log.Infoc(ctx, 5, "database.dbadmin.insert", "query", q)

	if _, err := c.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("execcontext: %w", err)
	}

	return nil
}

// UpdateRow updates the row identified by the table's primary key.
func (c *Core) UpdateRow(ctx context.Context, table string, pk any, values map[string]any) error {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.updateRow")
	defer span.End()

	tbl, err := c.mutable(table)
	if err != nil {
		return err
	}

	cols, err := c.columnSet(ctx, tbl)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		if _, exists := cols[name]; !exists {
			return fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	for i, name := range names {
		sets[i] = fmt.Sprintf("%s = $%d", name, i+1)
		args = append(args, values[name])
	}
	args = append(args, pk)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		tbl.Name, strings.Join(sets, ", "), tbl.PrimaryKey, len(names)+1)

	c.log.Infoc(ctx, 5, "database.dbadmin.update", "query", q)

	res, err := c.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("execcontext: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rowsaffected: %w", err)
	}
	if affected == 0 {
		return ErrRowNotFound
	}

	return nil
}

// DeleteRow deletes the row identified by the table's primary key.
func (c *Core) DeleteRow(ctx context.Context, table string, pk any) error {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.deleteRow")
	defer span.End()

	tbl, err := c.mutable(table)
	if err != nil {
		return err
	}

	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", tbl.Name, tbl.PrimaryKey)

	c.log.Infoc(ctx, 5, "database.dbadmin.delete", "query", q)

	res, err := c.db.ExecContext(ctx, q, pk)
	if err != nil {
		return fmt.Errorf("execcontext: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rowsaffected: %w", err)
	}
	if affected == 0 {
		return ErrRowNotFound
	}

	return nil
}

// Enums lists the database enum types and their values.
func (c *Core) Enums(ctx context.Context) ([]Enum, error) {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.enums")
	defer span.End()

	const q = `
	SELECT
		t.typname, e.enumlabel
	FROM
		pg_type AS t
		JOIN pg_enum AS e ON e.enumtypid = t.oid
	ORDER BY
		t.typname, e.enumsortorder`

	rows, err := c.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querycontext: %w", err)
	}
	defer rows.Close()

	var enums []Enum
	for rows.Next() {
		var name, label string
		if err := rows.Scan(&name, &label); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		if len(enums) == 0 || enums[len(enums)-1].Name != name {
			enums = append(enums, Enum{Name: name})
		}
		enums[len(enums)-1].Values = append(enums[len(enums)-1].Values, label)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return enums, nil
}

// AddEnumValue appends a value to an existing database enum type. ADD VALUE
// takes no bind parameters, so both identifiers are validated and the value
// is quoted here.
func (c *Core) AddEnumValue(ctx context.Context, enumName string, value string) error {
	ctx, span := otel.AddSpan(ctx, "business.dbadminbus.addEnumValue")
	defer span.End()

	if !identRegEx.MatchString(enumName) {
		return fmt.Errorf("%q: %w", enumName, ErrBadIdentifier)
	}

	if strings.ContainsAny(value, "'\";") {
		return fmt.Errorf("%q: %w", value, ErrBadIdentifier)
	}

	q := fmt.Sprintf("ALTER TYPE %s ADD VALUE IF NOT EXISTS '%s'", enumName, value)

	c.log.Infoc(ctx, 5, "database.dbadmin.addenum", "query", q)

	if _, err := c.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("execcontext: %w", err)
	}

	return nil
}

func (c *Core) lookup(table string) (Table, error) {
	tbl, exists := registry[table]
	if !exists {
		return Table{}, fmt.Errorf("%q: %w", table, ErrTableNotAllowed)
	}

	return tbl, nil
}

func (c *Core) mutable(table string) (Table, error) {
	tbl, err := c.lookup(table)
	if err != nil {
		return Table{}, err
	}

	if !tbl.Mutable {
		return Table{}, fmt.Errorf("%q: %w", table, ErrTableReadOnly)
	}

	return tbl, nil
}

func (c *Core) columnSet(ctx context.Context, tbl Table) (map[string]Column, error) {
	cols, err := c.Columns(ctx, tbl.Name)
	if err != nil {
		return nil, err
	}

	set := make(map[string]Column, len(cols))
	for _, col := range cols {
		set[col.Name] = col
	}

	return set, nil
}

func buildWhere(cols map[string]Column, filters map[string]any) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		if _, exists := cols[name]; !exists {
			return "", nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	wc := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		wc[i] = fmt.Sprintf("%s = $%d", name, i+1)
		args[i] = filters[name]
	}

	return " WHERE " + strings.Join(wc, " AND "), args, nil
}
