package orgdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
)

type orgDB struct {
	ID          uuid.UUID `db:"org_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	BillingPlan string    `db:"billing_plan"`
	Enabled     bool      `db:"enabled"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDBOrg(org orgbus.Organization) orgDB {
	return orgDB{
		ID:          org.ID,
		Name:        org.Name.String(),
		Slug:        org.Slug,
		BillingPlan: org.BillingPlan,
		Enabled:     org.Enabled,
		CreatedAt:   org.CreatedAt.UTC(),
		UpdatedAt:   org.UpdatedAt.UTC(),
	}
}

func toBusOrg(dbOrg orgDB) (orgbus.Organization, error) {
	nme, err := name.Parse(dbOrg.Name)
	if err != nil {
		return orgbus.Organization{}, fmt.Errorf("parse name: %w", err)
	}

	org := orgbus.Organization{
		ID:          dbOrg.ID,
		Name:        nme,
		Slug:        dbOrg.Slug,
		BillingPlan: dbOrg.BillingPlan,
		Enabled:     dbOrg.Enabled,
		CreatedAt:   dbOrg.CreatedAt.In(time.Local),
		UpdatedAt:   dbOrg.UpdatedAt.In(time.Local),
	}

	return org, nil
}

func toBusOrgs(dbOrgs []orgDB) ([]orgbus.Organization, error) {
	orgs := make([]orgbus.Organization, len(dbOrgs))

	for i, dbOrg := range dbOrgs {
		var err error
		orgs[i], err = toBusOrg(dbOrg)
		if err != nil {
			return nil, err
		}
	}

	return orgs, nil
}
