package userdb

import (
	"database/sql"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

type userDB struct {
	ID           uuid.UUID      `db:"user_id"`
	OrgID        uuid.NullUUID  `db:"org_id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Roles        string         `db:"roles"`
	PasswordHash []byte         `db:"password_hash"`
	Phone        sql.NullString `db:"phone"`
	Currency     string         `db:"currency"`
	Enabled      bool           `db:"enabled"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func toDBUser(bus userbus.User) userDB {
	return userDB{
		ID:           bus.ID,
		OrgID:        uuid.NullUUID{UUID: bus.OrgID, Valid: bus.OrgID != uuid.Nil},
		Name:         bus.Name.String(),
		Email:        bus.Email.Address,
		Roles:        strings.Join(role.ParseToString(bus.Roles), ","),
		PasswordHash: bus.PasswordHash,
		Phone:        phone.ToSQLNullString(bus.Phone),
		Currency:     bus.Currency.String(),
		Enabled:      bus.Enabled,
		CreatedAt:    bus.CreatedAt.UTC(),
		UpdatedAt:    bus.UpdatedAt.UTC(),
	}
}

func toBusUser(db userDB) (userbus.User, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse name: %w", err)
	}

	ph, err := phone.ParseNull(db.Phone.String)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse phone: %w", err)
	}

	var roles []role.Role
	if db.Roles != "" {
		roles, err = role.ParseMany(strings.Split(db.Roles, ","))
		if err != nil {
			return userbus.User{}, fmt.Errorf("parse roles: %w", err)
		}
	}

	currency, err := money.ParseCurrency(db.Currency)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse currency: %w", err)
	}

	bus := userbus.User{
		ID:           db.ID,
		OrgID:        db.OrgID.UUID,
		Name:         nme,
		Email:        mail.Address{Address: db.Email},
		Roles:        roles,
		PasswordHash: db.PasswordHash,
		Phone:        ph,
		Currency:     currency,
		Enabled:      db.Enabled,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusUsers(dbs []userDB) ([]userbus.User, error) {
	bus := make([]userbus.User, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusUser(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
