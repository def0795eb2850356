package portalapp

import (
	"encoding/json"
	"time"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
)

// Profile is the portal identity page: the profile link plus the ledger
// record it points at.
type Profile struct {
	TenantID    string  `json:"tenantId"`
	TenantCode  string  `json:"tenantCode"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	LeaseStart  string  `json:"leaseStart"`
	LeaseEnd    string  `json:"leaseEnd"`
	MonthlyRent float64 `json:"monthlyRent"`
	Status      string  `json:"status"`
}

// Encode implements the encoder interface.
func (p Profile) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppProfile(prf tenantbus.Profile, tnt tenantbus.Tenant) Profile {
	return Profile{
		TenantID:    tnt.ID.String(),
		TenantCode:  prf.TenantCode,
		Name:        tnt.Name.String(),
		Email:       tnt.Email,
		Phone:       tnt.Phone.String(),
		LeaseStart:  tnt.LeaseStart.Format(time.RFC3339),
		LeaseEnd:    tnt.LeaseEnd.Format(time.RFC3339),
		MonthlyRent: tnt.MonthlyRent.Value(),
		Status:      tnt.Status.String(),
	}
}

// Bill represents an invoice as rendered on the portal billing page.
type Bill struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
}

// Bills wraps the caller's invoice list for encoding.
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
		}
	}
	return Bills{Items: items}
}

// FamilyMember represents a registered family member.
type FamilyMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// FamilyMembers wraps the caller's family list for encoding.
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
		items[i] = FamilyMember{
			ID:           fm.ID.String(),
			Name:         fm.Name.String(),
			Relationship: fm.Relationship,
			Phone:        fm.Phone.String(),
		}
	}
	return FamilyMembers{Items: items}
}

// Document represents an attached document.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DocType     string `json:"docType"`
	FileURL     string `json:"fileUrl"`
	DateCreated string `json:"dateCreated"`
}

// Documents wraps the caller's document list for encoding.
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
		items[i] = Document{
			ID:          doc.ID.String(),
			Title:       doc.Title,
			DocType:     doc.DocType,
			FileURL:     doc.FileURL,
			DateCreated: doc.CreatedAt.Format(time.RFC3339),
		}
	}
	return Documents{Items: items}
}

// Room describes the unit the caller occupies.
type Room struct {
	Number string  `json:"number"`
	Floor  int     `json:"floor"`
	Rent   float64 `json:"rent"`
	Status string  `json:"status"`
}

// Encode implements the encoder interface.
func (r Room) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}

func toAppRoom(unt unitbus.Unit) Room {
	return Room{
		Number: unt.Number,
		Floor:  unt.Floor,
		Rent:   unt.Rent.Value(),
		Status: unt.Status.String(),
	}
}

// MeterReading represents a utility reading shown on the portal.
type MeterReading struct {
	ID           string  `json:"id"`
	ReadingDate  string  `json:"readingDate"`
	PreviousRead float64 `json:"previousRead"`
	CurrentRead  float64 `json:"currentRead"`
	Amount       float64 `json:"amount"`
}

// MeterReadings wraps the caller's reading list for encoding.
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
		items[i] = MeterReading{
			ID:           mr.ID.String(),
			ReadingDate:  mr.ReadingDate.Format(time.RFC3339),
			PreviousRead: mr.PreviousRead,
			CurrentRead:  mr.CurrentRead,
			Amount:       mr.Amount.Value(),
		}
	}
	return MeterReadings{Items: items}
}

// Payment represents a QR payment request shown on the portal history page.
type Payment struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	BillRefs    []string `json:"billRefs"`
	Status      string   `json:"status"`
	ImageURL    string   `json:"imageUrl"`
	ExpiresAt   string   `json:"expiresAt"`
	DateCreated string   `json:"dateCreated"`
}

// Payments wraps the caller's QR request list for encoding.
type Payments struct {
	Items []Payment `json:"items"`
}

// Encode implements the encoder interface.
func (p Payments) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppPayments(reqs []qrpaybus.Request) Payments {
	items := make([]Payment, len(reqs))
	for i, req := range reqs {
		items[i] = Payment{
			ID:          req.ID.String(),
			Amount:      req.Amount.Value(),
			BillRefs:    req.BillReferences,
			Status:      req.Status.String(),
			ImageURL:    req.ImageURL,
			ExpiresAt:   req.ExpiresAt.Format(time.RFC3339),
			DateCreated: req.CreatedAt.Format(time.RFC3339),
		}
	}
	return Payments{Items: items}
}
