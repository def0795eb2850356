package propertydb

import (
	"bytes"
	"strings"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
)

func applyFilter(filter propertybus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["property_id"] = *filter.ID
		wc = append(wc, "p.property_id = :property_id")
	}

	if filter.OrgID != nil {
		data["org_id"] = *filter.OrgID
		wc = append(wc, "p.org_id = :org_id")
	}

	if filter.Name != nil {
		data["name"] = "%" + filter.Name.String() + "%"
		wc = append(wc, "p.name LIKE :name")
	}

	if filter.PropertyType != nil {
		data["property_type"] = *filter.PropertyType
		wc = append(wc, "p.property_type = :property_type")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
