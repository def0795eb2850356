package propertydb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
)

type propertyDB struct {
	ID           uuid.UUID `db:"property_id"`
	OrgID        uuid.UUID `db:"org_id"`
	Name         string    `db:"name"`
	Address      string    `db:"address"`
	PropertyType string    `db:"property_type"`
	UnitCount    int       `db:"unit_count"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func toDBProperty(prp propertybus.Property) propertyDB {
	return propertyDB{
		ID:           prp.ID,
		OrgID:        prp.OrgID,
		Name:         prp.Name.String(),
		Address:      prp.Address,
		PropertyType: prp.PropertyType,
		CreatedAt:    prp.CreatedAt.UTC(),
		UpdatedAt:    prp.UpdatedAt.UTC(),
	}
}

func toBusProperty(dbPrp propertyDB) (propertybus.Property, error) {
	nme, err := name.Parse(dbPrp.Name)
	if err != nil {
		return propertybus.Property{}, fmt.Errorf("parse name: %w", err)
	}

	prp := propertybus.Property{
		ID:           dbPrp.ID,
		OrgID:        dbPrp.OrgID,
		Name:         nme,
		Address:      dbPrp.Address,
		PropertyType: dbPrp.PropertyType,
		UnitCount:    dbPrp.UnitCount,
		CreatedAt:    dbPrp.CreatedAt.In(time.Local),
		UpdatedAt:    dbPrp.UpdatedAt.In(time.Local),
	}

	return prp, nil
}

func toBusProperties(dbPrps []propertyDB) ([]propertybus.Property, error) {
	prps := make([]propertybus.Property, len(dbPrps))

	for i, dbPrp := range dbPrps {
		var err error
		prps[i], err = toBusProperty(dbPrp)
		if err != nil {
			return nil, err
		}
	}

	return prps, nil
}
