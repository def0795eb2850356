package tenantapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
)

// FamilyMember represents a person living with a tenant.
type FamilyMember struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenantId"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	DateCreated  string `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (f FamilyMember) Encode() ([]byte, string, error) {
	data, err := json.Marshal(f)
	return data, "application/json", err
}

func toAppFamilyMember(bus tenantbus.FamilyMember) FamilyMember {
	return FamilyMember{
		ID:           bus.ID.String(),
		TenantID:     bus.TenantID.String(),
		Name:         bus.Name.String(),
		Relationship: bus.Relationship,
		Phone:        bus.Phone.String(),
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
	}
}

// FamilyMembers wraps a tenant's family list for encoding.
type FamilyMembers struct {
	Items []FamilyMember `json:"items"`
}

// Encode implements the encoder interface.
func (f FamilyMembers) Encode() ([]byte, string, error) {
	data, err := json.Marshal(f)
	return data, "application/json", err
}

func toAppFamilyMembers(fms []tenantbus.FamilyMember) FamilyMembers {
	items := make([]FamilyMember, len(fms))
	for i, fm := range fms {
		items[i] = toAppFamilyMember(fm)
	}
	return FamilyMembers{Items: items}
}

// NewFamilyMember defines the data needed to register a family member.
type NewFamilyMember struct {
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone"`
}

// Decode implements the decoder interface.
func (app *NewFamilyMember) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewFamilyMember) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewFamilyMember(app NewFamilyMember, tenantID uuid.UUID) (tenantbus.NewFamilyMember, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return tenantbus.NewFamilyMember{}, fmt.Errorf("parse name: %w", err)
	}

	phn, err := phone.ParseNull(app.Phone)
	if err != nil {
		return tenantbus.NewFamilyMember{}, fmt.Errorf("parse phone: %w", err)
	}

	bus := tenantbus.NewFamilyMember{
		TenantID:     tenantID,
		Name:         nme,
		Relationship: app.Relationship,
		Phone:        phn,
	}

	return bus, nil
}

// Document represents a file attached to a tenant record.
type Document struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenantId"`
	Title       string `json:"title"`
	DocType     string `json:"docType"`
	FileURL     string `json:"fileUrl"`
	UploadedBy  string `json:"uploadedBy"`
	DateCreated string `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (d Document) Encode() ([]byte, string, error) {
	data, err := json.Marshal(d)
	return data, "application/json", err
}

func toAppDocument(bus tenantbus.Document) Document {
	return Document{
		ID:          bus.ID.String(),
		TenantID:    bus.TenantID.String(),
		Title:       bus.Title,
		DocType:     bus.DocType,
		FileURL:     bus.FileURL,
		UploadedBy:  bus.UploadedBy.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

// Documents wraps a tenant's document list for encoding.
type Documents struct {
	Items []Document `json:"items"`
}

// Encode implements the encoder interface.
func (d Documents) Encode() ([]byte, string, error) {
	data, err := json.Marshal(d)
	return data, "application/json", err
}

func toAppDocuments(docs []tenantbus.Document) Documents {
	items := make([]Document, len(docs))
	for i, doc := range docs {
		items[i] = toAppDocument(doc)
	}
	return Documents{Items: items}
}

// NewDocument defines the data needed to attach a document.
type NewDocument struct {
	Title   string `json:"title" validate:"required"`
	DocType string `json:"docType" validate:"required"`
	FileURL string `json:"fileUrl" validate:"required,url"`
}

// Decode implements the decoder interface.
func (app *NewDocument) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewDocument) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// MeterReading represents a utility meter reading recorded for billing.
type MeterReading struct {
	ID           string  `json:"id"`
	TenantID     string  `json:"tenantId"`
	ReadingDate  string  `json:"readingDate"`
	PreviousRead float64 `json:"previousRead"`
	CurrentRead  float64 `json:"currentRead"`
	Amount       float64 `json:"amount"`
	RecordedBy   string  `json:"recordedBy"`
	DateCreated  string  `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (m MeterReading) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMeterReading(bus tenantbus.MeterReading) MeterReading {
	return MeterReading{
		ID:           bus.ID.String(),
		TenantID:     bus.TenantID.String(),
		ReadingDate:  bus.ReadingDate.Format(time.RFC3339),
		PreviousRead: bus.PreviousRead,
		CurrentRead:  bus.CurrentRead,
		Amount:       bus.Amount.Value(),
		RecordedBy:   bus.RecordedBy.String(),
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
	}
}

// MeterReadings wraps a tenant's reading list for encoding.
type MeterReadings struct {
	Items []MeterReading `json:"items"`
}

// Encode implements the encoder interface.
func (m MeterReadings) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMeterReadings(mrs []tenantbus.MeterReading) MeterReadings {
	items := make([]MeterReading, len(mrs))
	for i, mr := range mrs {
		items[i] = toAppMeterReading(mr)
	}
	return MeterReadings{Items: items}
}

// NewMeterReading defines the data needed to record a meter reading.
type NewMeterReading struct {
	ReadingDate  string  `json:"readingDate" validate:"required"`
	PreviousRead float64 `json:"previousRead" validate:"gte=0"`
	CurrentRead  float64 `json:"currentRead" validate:"required,gtefield=PreviousRead"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

// Decode implements the decoder interface.
func (app *NewMeterReading) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewMeterReading) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewMeterReading(app NewMeterReading, tenantID uuid.UUID, recordedBy uuid.UUID) (tenantbus.NewMeterReading, error) {
	readingDate, err := time.Parse(time.RFC3339, app.ReadingDate)
	if err != nil {
		return tenantbus.NewMeterReading{}, fmt.Errorf("parse reading date: %w", err)
	}

	amt, err := money.Parse(app.Amount)
	if err != nil {
		return tenantbus.NewMeterReading{}, fmt.Errorf("parse amount: %w", err)
	}

	bus := tenantbus.NewMeterReading{
		TenantID:     tenantID,
		ReadingDate:  readingDate,
		PreviousRead: app.PreviousRead,
		CurrentRead:  app.CurrentRead,
		Amount:       amt,
		RecordedBy:   recordedBy,
	}

	return bus, nil
}

// Room describes the unit a tenant currently occupies.
type Room struct {
	UnitID     string  `json:"unitId"`
	PropertyID string  `json:"propertyId"`
	Number     string  `json:"number"`
	Floor      int     `json:"floor"`
	Rent       float64 `json:"rent"`
	Status     string  `json:"status"`
}

// Encode implements the encoder interface.
func (r Room) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}

func toAppRoom(bus unitbus.Unit) Room {
	return Room{
		UnitID:     bus.ID.String(),
		PropertyID: bus.PropertyID.String(),
		Number:     bus.Number,
		Floor:      bus.Floor,
		Rent:       bus.Rent.Value(),
		Status:     bus.Status.String(),
	}
}

// Bill represents an invoice raised against a tenant, as shown on the
// tenant detail and portal billing pages.
type Bill struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	DateCreated string  `json:"dateCreated"`
}

// Bills wraps a tenant's invoice list for encoding.
type Bills struct {
	Items []Bill `json:"items"`
}

// Encode implements the encoder interface.
func (b Bills) Encode() ([]byte, string, error) {
	data, err := json.Marshal(b)
	return data, "application/json", err
}

func toAppBills(invs []invoicebus.Invoice) Bills {
	items := make([]Bill, len(invs))
	for i, inv := range invs {
		items[i] = Bill{
			ID:          inv.ID.String(),
			Description: inv.Description,
			Amount:      inv.Amount.Value(),
			DueDate:     inv.DueDate.Format(time.RFC3339),
			Status:      inv.Status.String(),
			DateCreated: inv.CreatedAt.Format(time.RFC3339),
		}
	}
	return Bills{Items: items}
}
