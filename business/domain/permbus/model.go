package permbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
)

// Grant represents a named capability held by a user on top of their roles.
type Grant struct {
	UserID     uuid.UUID
	Permission permission.Permission
	GrantedBy  uuid.UUID
	CreatedAt  time.Time
}
