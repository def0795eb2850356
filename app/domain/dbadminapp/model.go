package dbadminapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/dbadminbus"
)

// Table represents an allowlisted table visible in the ops console.
type Table struct {
	Name       string `json:"name"`
	PrimaryKey string `json:"primaryKey"`
	Mutable    bool   `json:"mutable"`
}

// Tables is the list of console tables.
type Tables []Table

// Encode implements the encoder interface.
func (t Tables) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTables(tbls []dbadminbus.Table) Tables {
	app := make(Tables, len(tbls))
	for i, tbl := range tbls {
		app[i] = Table{
			Name:       tbl.Name,
			PrimaryKey: tbl.PrimaryKey,
			Mutable:    tbl.Mutable,
		}
	}
	return app
}

// Column represents a column of a console table.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"dataType"`
	Nullable bool   `json:"nullable"`
	Default  string `json:"default,omitempty"`
}

// Columns is the list of columns for a table.
type Columns []Column

// Encode implements the encoder interface.
func (c Columns) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppColumns(cols []dbadminbus.Column) Columns {
	app := make(Columns, len(cols))
	for i, col := range cols {
		app[i] = Column{
			Name:     col.Name,
			DataType: col.DataType,
			Nullable: col.Nullable,
			Default:  col.Default,
		}
	}
	return app
}

// Enum represents a database enum type and its values.
type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Enums is the list of database enum types.
type Enums []Enum

// Encode implements the encoder interface.
func (e Enums) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

func toAppEnums(enums []dbadminbus.Enum) Enums {
	app := make(Enums, len(enums))
	for i, enum := range enums {
		app[i] = Enum{
			Name:   enum.Name,
			Values: enum.Values,
		}
	}
	return app
}

// RowValues carries column values for a row insert or update.
type RowValues struct {
	Values map[string]any `json:"values" validate:"required,min=1"`
}

// Decode implements the decoder interface.
func (app *RowValues) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app RowValues) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// NewEnumValue carries a value to append to a database enum type.
type NewEnumValue struct {
	Value string `json:"value" validate:"required"`
}

// Decode implements the decoder interface.
func (app *NewEnumValue) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewEnumValue) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// AuditEntry represents one record of the append-only audit log.
type AuditEntry struct {
	ID        string `json:"id"`
	ActorID   string `json:"actorId"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toAppAuditEntry(bus auditbus.Entry) AuditEntry {
	return AuditEntry{
		ID:        bus.ID.String(),
		ActorID:   bus.ActorID.String(),
		Action:    bus.Action,
		Entity:    bus.Entity,
		EntityID:  bus.EntityID,
		Notes:     bus.Notes,
		CreatedAt: bus.CreatedAt.Format(time.RFC3339),
	}
}

func toAppAuditEntries(ents []auditbus.Entry) []AuditEntry {
	app := make([]AuditEntry, len(ents))
	for i, ent := range ents {
		app[i] = toAppAuditEntry(ent)
	}
	return app
}
