package unitdb

import (
	"bytes"
	"strings"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
)

func applyFilter(filter unitbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["unit_id"] = *filter.ID
		wc = append(wc, "un.unit_id = :unit_id")
	}

	if filter.PropertyID != nil {
		data["property_id"] = *filter.PropertyID
		wc = append(wc, "un.property_id = :property_id")
	}

	if filter.OrgID != nil {
		data["org_id"] = *filter.OrgID
		wc = append(wc, "un.org_id = :org_id")
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "un.status = :status")
	}

	if filter.OccupantID != nil {
		data["occupant_id"] = *filter.OccupantID
		wc = append(wc, "un.occupant_id = :occupant_id")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
