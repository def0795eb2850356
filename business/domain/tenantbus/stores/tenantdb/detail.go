package tenantdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
)

type familyMemberDB struct {
	ID           uuid.UUID      `db:"member_id"`
	TenantID     uuid.UUID      `db:"tenant_id"`
	Name         string         `db:"name"`
	Relationship string         `db:"relationship"`
	Phone        sql.NullString `db:"phone"`
	CreatedAt    time.Time      `db:"created_at"`
}

type documentDB struct {
	ID         uuid.UUID `db:"document_id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	Title      string    `db:"title"`
	DocType    string    `db:"doc_type"`
	FileURL    string    `db:"file_url"`
	UploadedBy uuid.UUID `db:"uploaded_by"`
	CreatedAt  time.Time `db:"created_at"`
}

type meterReadingDB struct {
	ID           uuid.UUID `db:"reading_id"`
	TenantID     uuid.UUID `db:"tenant_id"`
	ReadingDate  time.Time `db:"reading_date"`
	PreviousRead float64   `db:"previous_read"`
	CurrentRead  float64   `db:"current_read"`
	Amount       float64   `db:"amount"`
	RecordedBy   uuid.UUID `db:"recorded_by"`
	CreatedAt    time.Time `db:"created_at"`
}

func toDBFamilyMember(fm tenantbus.FamilyMember) familyMemberDB {
	return familyMemberDB{
		ID:           fm.ID,
		TenantID:     fm.TenantID,
		Name:         fm.Name.String(),
		Relationship: fm.Relationship,
		Phone:        phone.ToSQLNullString(fm.Phone),
		CreatedAt:    fm.CreatedAt.UTC(),
	}
}

func toBusFamilyMember(db familyMemberDB) (tenantbus.FamilyMember, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return tenantbus.FamilyMember{}, fmt.Errorf("parse name: %w", err)
	}

	phn, err := phone.ParseNull(db.Phone.String)
	if err != nil {
		return tenantbus.FamilyMember{}, fmt.Errorf("parse phone: %w", err)
	}

	fm := tenantbus.FamilyMember{
		ID:           db.ID,
		TenantID:     db.TenantID,
		Name:         nme,
		Relationship: db.Relationship,
		Phone:        phn,
		CreatedAt:    db.CreatedAt.In(time.Local),
	}

	return fm, nil
}

func toDBDocument(doc tenantbus.Document) documentDB {
	return documentDB{
		ID:         doc.ID,
		TenantID:   doc.TenantID,
		Title:      doc.Title,
		DocType:    doc.DocType,
		FileURL:    doc.FileURL,
		UploadedBy: doc.UploadedBy,
		CreatedAt:  doc.CreatedAt.UTC(),
	}
}

func toBusDocument(db documentDB) tenantbus.Document {
	return tenantbus.Document{
		ID:         db.ID,
		TenantID:   db.TenantID,
		Title:      db.Title,
		DocType:    db.DocType,
		FileURL:    db.FileURL,
		UploadedBy: db.UploadedBy,
		CreatedAt:  db.CreatedAt.In(time.Local),
	}
}

func toDBMeterReading(mr tenantbus.MeterReading) meterReadingDB {
	return meterReadingDB{
		ID:           mr.ID,
		TenantID:     mr.TenantID,
		ReadingDate:  mr.ReadingDate.UTC(),
		PreviousRead: mr.PreviousRead,
		CurrentRead:  mr.CurrentRead,
		Amount:       mr.Amount.Value(),
		RecordedBy:   mr.RecordedBy,
		CreatedAt:    mr.CreatedAt.UTC(),
	}
}

func toBusMeterReading(db meterReadingDB) (tenantbus.MeterReading, error) {
	amt, err := money.Parse(db.Amount)
	if err != nil {
		return tenantbus.MeterReading{}, fmt.Errorf("parse amount: %w", err)
	}

	mr := tenantbus.MeterReading{
		ID:           db.ID,
		TenantID:     db.TenantID,
		ReadingDate:  db.ReadingDate.In(time.Local),
		PreviousRead: db.PreviousRead,
		CurrentRead:  db.CurrentRead,
		Amount:       amt,
		RecordedBy:   db.RecordedBy,
		CreatedAt:    db.CreatedAt.In(time.Local),
	}

	return mr, nil
}

// =============================================================================

// CreateFamilyMember inserts a family member record into the database.
func (s *Store) CreateFamilyMember(ctx context.Context, fm tenantbus.FamilyMember) error {
	const q = `
	INSERT INTO tenant_family_members
		(member_id, tenant_id, name, relationship, phone, created_at)
	VALUES
		(:member_id, :tenant_id, :name, :relationship, :phone, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBFamilyMember(fm)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// DeleteFamilyMember removes a family member record from the database.
func (s *Store) DeleteFamilyMember(ctx context.Context, tenantID uuid.UUID, memberID uuid.UUID) error {
	data := struct {
		TenantID string `db:"tenant_id"`
		MemberID string `db:"member_id"`
	}{
		TenantID: tenantID.String(),
		MemberID: memberID.String(),
	}

	const q = `
	DELETE FROM
		tenant_family_members
	WHERE
		tenant_id = :tenant_id AND member_id = :member_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryFamilyMembers retrieves the family members for the specified tenant.
func (s *Store) QueryFamilyMembers(ctx context.Context, tenantID uuid.UUID) ([]tenantbus.FamilyMember, error) {
	data := struct {
		TenantID string `db:"tenant_id"`
	}{
		TenantID: tenantID.String(),
	}

	const q = `
	SELECT
		member_id, tenant_id, name, relationship, phone, created_at
	FROM
		tenant_family_members
	WHERE
		tenant_id = :tenant_id
	ORDER BY
		created_at`

	var dbFms []familyMemberDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbFms); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	fms := make([]tenantbus.FamilyMember, len(dbFms))
	for i, dbFm := range dbFms {
		var err error
		fms[i], err = toBusFamilyMember(dbFm)
		if err != nil {
			return nil, err
		}
	}

	return fms, nil
}

// CreateDocument inserts a tenant document record into the database.
func (s *Store) CreateDocument(ctx context.Context, doc tenantbus.Document) error {
	const q = `
	INSERT INTO tenant_documents
		(document_id, tenant_id, title, doc_type, file_url, uploaded_by, created_at)
	VALUES
		(:document_id, :tenant_id, :title, :doc_type, :file_url, :uploaded_by, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBDocument(doc)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryDocuments retrieves the documents for the specified tenant.
func (s *Store) QueryDocuments(ctx context.Context, tenantID uuid.UUID) ([]tenantbus.Document, error) {
	data := struct {
		TenantID string `db:"tenant_id"`
	}{
		TenantID: tenantID.String(),
	}

	const q = `
	SELECT
		document_id, tenant_id, title, doc_type, file_url, uploaded_by, created_at
	FROM
		tenant_documents
	WHERE
		tenant_id = :tenant_id
	ORDER BY
		created_at DESC`

	var dbDocs []documentDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbDocs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	docs := make([]tenantbus.Document, len(dbDocs))
	for i, dbDoc := range dbDocs {
		docs[i] = toBusDocument(dbDoc)
	}

	return docs, nil
}

// CreateMeterReading inserts a meter reading record into the database.
func (s *Store) CreateMeterReading(ctx context.Context, mr tenantbus.MeterReading) error {
	const q = `
	INSERT INTO tenant_meter_readings
		(reading_id, tenant_id, reading_date, previous_read, current_read, amount, recorded_by, created_at)
	VALUES
		(:reading_id, :tenant_id, :reading_date, :previous_read, :current_read, :amount, :recorded_by, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBMeterReading(mr)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryMeterReadings retrieves the meter readings for the specified tenant,
// newest first.
func (s *Store) QueryMeterReadings(ctx context.Context, tenantID uuid.UUID) ([]tenantbus.MeterReading, error) {
	data := struct {
		TenantID string `db:"tenant_id"`
	}{
		TenantID: tenantID.String(),
	}

	const q = `
	SELECT
		reading_id, tenant_id, reading_date, previous_read, current_read, amount, recorded_by, created_at
	FROM
		tenant_meter_readings
	WHERE
		tenant_id = :tenant_id
	ORDER BY
		reading_date DESC`

	var dbMrs []meterReadingDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbMrs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	mrs := make([]tenantbus.MeterReading, len(dbMrs))
	for i, dbMr := range dbMrs {
		var err error
		mrs[i], err = toBusMeterReading(dbMr)
		if err != nil {
			return nil, err
		}
	}

	return mrs, nil
}
