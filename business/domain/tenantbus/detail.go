package tenantbus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// FamilyMember represents a person living with a tenant.
type FamilyMember struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         name.Name
	Relationship string
	Phone        phone.Null
	CreatedAt    time.Time
}

// NewFamilyMember contains information needed to register a family member.
type NewFamilyMember struct {
	TenantID     uuid.UUID
	Name         name.Name
	Relationship string
	Phone        phone.Null
}

// Document represents a file attached to a tenant record, such as a lease
// agreement or an identity proof.
type Document struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Title      string
	DocType    string
	FileURL    string
	UploadedBy uuid.UUID
	CreatedAt  time.Time
}

// NewDocument contains information needed to attach a document.
type NewDocument struct {
	TenantID   uuid.UUID
	Title      string
	DocType    string
	FileURL    string
	UploadedBy uuid.UUID
}

// MeterReading represents a utility meter reading recorded against a
// tenant's unit for billing.
type MeterReading struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	ReadingDate  time.Time
	PreviousRead float64
	CurrentRead  float64
	Amount       money.Money
	RecordedBy   uuid.UUID
	CreatedAt    time.Time
}

// NewMeterReading contains information needed to record a meter reading.
type NewMeterReading struct {
	TenantID     uuid.UUID
	ReadingDate  time.Time
	PreviousRead float64
	CurrentRead  float64
	Amount       money.Money
	RecordedBy   uuid.UUID
}

// =============================================================================

// AddFamilyMember registers a family member against a tenant record.
func (c *Core) AddFamilyMember(ctx context.Context, nfm NewFamilyMember) (FamilyMember, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.addfamilymember")
	defer span.End()

	fm := FamilyMember{
		ID:           uuid.New(),
		TenantID:     nfm.TenantID,
		Name:         nfm.Name,
		Relationship: nfm.Relationship,
		Phone:        nfm.Phone,
		CreatedAt:    time.Now(),
	}

	if err := c.storer.CreateFamilyMember(ctx, fm); err != nil {
		return FamilyMember{}, fmt.Errorf("create: %w", err)
	}

	return fm, nil
}

// QueryFamilyMembers retrieves the family members registered for a tenant.
func (c *Core) QueryFamilyMembers(ctx context.Context, tenantID uuid.UUID) ([]FamilyMember, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.queryfamilymembers")
	defer span.End()

	fms, err := c.storer.QueryFamilyMembers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return fms, nil
}

// RemoveFamilyMember deletes a family member record.
func (c *Core) RemoveFamilyMember(ctx context.Context, tenantID uuid.UUID, memberID uuid.UUID) error {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.removefamilymember")
	defer span.End()

	if err := c.storer.DeleteFamilyMember(ctx, tenantID, memberID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// AddDocument attaches a document to a tenant record.
func (c *Core) AddDocument(ctx context.Context, nd NewDocument) (Document, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.adddocument")
	defer span.End()

	doc := Document{
		ID:         uuid.New(),
		TenantID:   nd.TenantID,
		Title:      nd.Title,
		DocType:    nd.DocType,
		FileURL:    nd.FileURL,
		UploadedBy: nd.UploadedBy,
		CreatedAt:  time.Now(),
	}

	if err := c.storer.CreateDocument(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("create: %w", err)
	}

	return doc, nil
}

// QueryDocuments retrieves the documents attached to a tenant record.
func (c *Core) QueryDocuments(ctx context.Context, tenantID uuid.UUID) ([]Document, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.querydocuments")
	defer span.End()

	docs, err := c.storer.QueryDocuments(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return docs, nil
}

// RecordMeterReading records a utility meter reading for a tenant.
func (c *Core) RecordMeterReading(ctx context.Context, nmr NewMeterReading) (MeterReading, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.recordmeterreading")
	defer span.End()

	mr := MeterReading{
		ID:           uuid.New(),
		TenantID:     nmr.TenantID,
		ReadingDate:  nmr.ReadingDate,
		PreviousRead: nmr.PreviousRead,
		CurrentRead:  nmr.CurrentRead,
		Amount:       nmr.Amount,
		RecordedBy:   nmr.RecordedBy,
		CreatedAt:    time.Now(),
	}

	if err := c.storer.CreateMeterReading(ctx, mr); err != nil {
		return MeterReading{}, fmt.Errorf("create: %w", err)
	}

	return mr, nil
}

// QueryMeterReadings retrieves the meter readings recorded for a tenant,
// newest first.
func (c *Core) QueryMeterReadings(ctx context.Context, tenantID uuid.UUID) ([]MeterReading, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.querymeterreadings")
	defer span.End()

	mrs, err := c.storer.QueryMeterReadings(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return mrs, nil
}
