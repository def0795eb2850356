package invoicedb

import (
	"bytes"
	"strings"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
)

func applyFilter(filter invoicebus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["invoice_id"] = *filter.ID
		wc = append(wc, "i.invoice_id = :invoice_id")
	}

	if filter.OrgID != nil {
		data["org_id"] = *filter.OrgID
		wc = append(wc, "i.org_id = :org_id")
	}

	if filter.TenantID != nil {
		data["tenant_id"] = *filter.TenantID
		wc = append(wc, "i.tenant_id = :tenant_id")
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "i.status = :status")
	}

	if filter.StartDueDate != nil {
		data["start_due_date"] = filter.StartDueDate.UTC()
		wc = append(wc, "i.due_date >= :start_due_date")
	}

	if filter.EndDueDate != nil {
		data["end_due_date"] = filter.EndDueDate.UTC()
		wc = append(wc, "i.due_date <= :end_due_date")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
