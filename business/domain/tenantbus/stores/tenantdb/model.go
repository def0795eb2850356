package tenantdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/tenantstatus"
)

type tenantDB struct {
	ID          uuid.UUID  `db:"tenant_id"`
	OrgID       uuid.UUID  `db:"org_id"`
	PropertyID  *uuid.UUID `db:"property_id"`
	UnitID      *uuid.UUID `db:"unit_id"`
	Name        string     `db:"name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	LeaseStart  time.Time  `db:"lease_start"`
	LeaseEnd    time.Time  `db:"lease_end"`
	MonthlyRent float64    `db:"monthly_rent"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type profileDB struct {
	UserID     uuid.UUID `db:"user_id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	TenantCode string    `db:"tenant_code"`
	CreatedAt  time.Time `db:"created_at"`
}

type statisticsDB struct {
	Total    int     `db:"total"`
	Pending  int     `db:"pending"`
	Active   int     `db:"active"`
	Inactive int     `db:"inactive"`
	Evicted  int     `db:"evicted"`
	RentRoll float64 `db:"rent_roll"`
}

func toDBTenant(tnt tenantbus.Tenant) tenantDB {
	return tenantDB{
		ID:          tnt.ID,
		OrgID:       tnt.OrgID,
		PropertyID:  tnt.PropertyID,
		UnitID:      tnt.UnitID,
		Name:        tnt.Name.String(),
		Email:       tnt.Email,
		Phone:       tnt.Phone.String(),
		LeaseStart:  tnt.LeaseStart.UTC(),
		LeaseEnd:    tnt.LeaseEnd.UTC(),
		MonthlyRent: tnt.MonthlyRent.Value(),
		Status:      tnt.Status.String(),
		CreatedAt:   tnt.CreatedAt.UTC(),
		UpdatedAt:   tnt.UpdatedAt.UTC(),
	}
}

func toBusTenant(dbTnt tenantDB) (tenantbus.Tenant, error) {
	nme, err := name.Parse(dbTnt.Name)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse name: %w", err)
	}

	phn, err := phone.Parse(dbTnt.Phone)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse phone: %w", err)
	}

	rent, err := money.Parse(dbTnt.MonthlyRent)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse rent: %w", err)
	}

	status, err := tenantstatus.Parse(dbTnt.Status)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse status: %w", err)
	}

	tnt := tenantbus.Tenant{
		ID:          dbTnt.ID,
		OrgID:       dbTnt.OrgID,
		PropertyID:  dbTnt.PropertyID,
		UnitID:      dbTnt.UnitID,
		Name:        nme,
		Email:       dbTnt.Email,
		Phone:       phn,
		LeaseStart:  dbTnt.LeaseStart.In(time.Local),
		LeaseEnd:    dbTnt.LeaseEnd.In(time.Local),
		MonthlyRent: rent,
		Status:      status,
		CreatedAt:   dbTnt.CreatedAt.In(time.Local),
		UpdatedAt:   dbTnt.UpdatedAt.In(time.Local),
	}

	return tnt, nil
}

func toBusTenants(dbTnts []tenantDB) ([]tenantbus.Tenant, error) {
	tnts := make([]tenantbus.Tenant, len(dbTnts))

	for i, dbTnt := range dbTnts {
		var err error
		tnts[i], err = toBusTenant(dbTnt)
		if err != nil {
			return nil, err
		}
	}

	return tnts, nil
}

func toDBProfile(prf tenantbus.Profile) profileDB {
	return profileDB{
		UserID:     prf.UserID,
		TenantID:   prf.TenantID,
		TenantCode: prf.TenantCode,
		CreatedAt:  prf.CreatedAt.UTC(),
	}
}

func toBusProfile(dbPrf profileDB) tenantbus.Profile {
	return tenantbus.Profile{
		UserID:     dbPrf.UserID,
		TenantID:   dbPrf.TenantID,
		TenantCode: dbPrf.TenantCode,
		CreatedAt:  dbPrf.CreatedAt.In(time.Local),
	}
}

func toBusStatistics(dbStats statisticsDB) (tenantbus.Statistics, error) {
	rentRoll, err := money.Parse(dbStats.RentRoll)
	if err != nil {
		return tenantbus.Statistics{}, fmt.Errorf("parse rent roll: %w", err)
	}

	stats := tenantbus.Statistics{
		Total:           dbStats.Total,
		Pending:         dbStats.Pending,
		Active:          dbStats.Active,
		Inactive:        dbStats.Inactive,
		Evicted:         dbStats.Evicted,
		MonthlyRentRoll: rentRoll,
	}

	return stats, nil
}
