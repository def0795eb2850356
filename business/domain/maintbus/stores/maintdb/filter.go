package maintdb

import (
	"bytes"
	"strings"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
)

func applyFilter(filter maintbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["ticket_id"] = *filter.ID
		wc = append(wc, "mt.ticket_id = :ticket_id")
	}

	if filter.OrgID != nil {
		data["org_id"] = *filter.OrgID
		wc = append(wc, "mt.org_id = :org_id")
	}

	if filter.UnitID != nil {
		data["unit_id"] = *filter.UnitID
		wc = append(wc, "mt.unit_id = :unit_id")
	}

	if filter.TenantID != nil {
		data["tenant_id"] = *filter.TenantID
		wc = append(wc, "mt.tenant_id = :tenant_id")
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "mt.status = :status")
	}

	if filter.Priority != nil {
		data["priority"] = filter.Priority.String()
		wc = append(wc, "mt.priority = :priority")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
