package tenantdb

import (
	"bytes"
	"strings"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
)

func applyFilter(filter tenantbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["tenant_id"] = *filter.ID
		wc = append(wc, "t.tenant_id = :tenant_id")
	}

	if filter.OrgID != nil {
		data["org_id"] = *filter.OrgID
		wc = append(wc, "t.org_id = :org_id")
	}

	if filter.PropertyID != nil {
		data["property_id"] = *filter.PropertyID
		wc = append(wc, "t.property_id = :property_id")
	}

	if filter.UnitID != nil {
		data["unit_id"] = *filter.UnitID
		wc = append(wc, "t.unit_id = :unit_id")
	}

	if filter.Name != nil {
		data["name"] = "%" + filter.Name.String() + "%"
		wc = append(wc, "t.name LIKE :name")
	}

	if filter.Email != nil {
		data["email"] = *filter.Email
		wc = append(wc, "t.email = :email")
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "t.status = :status")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
