package permdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
)

type grantDB struct {
	UserID     uuid.UUID `db:"user_id"`
	Permission string    `db:"permission"`
	GrantedBy  uuid.UUID `db:"granted_by"`
	CreatedAt  time.Time `db:"created_at"`
}

func toDBGrant(grt permbus.Grant) grantDB {
	return grantDB{
		UserID:     grt.UserID,
		Permission: grt.Permission.String(),
		GrantedBy:  grt.GrantedBy,
		CreatedAt:  grt.CreatedAt.UTC(),
	}
}

func toBusGrant(dbGrt grantDB) (permbus.Grant, error) {
	perm, err := permission.Parse(dbGrt.Permission)
	if err != nil {
		return permbus.Grant{}, fmt.Errorf("parse permission: %w", err)
	}

	grt := permbus.Grant{
		UserID:     dbGrt.UserID,
		Permission: perm,
		GrantedBy:  dbGrt.GrantedBy,
		CreatedAt:  dbGrt.CreatedAt.In(time.Local),
	}

	return grt, nil
}

func toBusGrants(dbGrts []grantDB) ([]permbus.Grant, error) {
	grts := make([]permbus.Grant, len(dbGrts))

	for i, dbGrt := range dbGrts {
		var err error
		grts[i], err = toBusGrant(dbGrt)
		if err != nil {
			return nil, err
		}
	}

	return grts, nil
}
