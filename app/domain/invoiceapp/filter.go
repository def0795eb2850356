package invoiceapp

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/invoicestatus"
)

type queryParams struct {
	Page         string
	Rows         string
	OrderBy      string
	ID           string
	TenantID     string
	Status       string
	StartDueDate string
	EndDueDate   string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:         values.Get("page"),
		Rows:         values.Get("rows"),
		OrderBy:      values.Get("orderBy"),
		ID:           values.Get("invoice_id"),
		TenantID:     values.Get("tenant_id"),
		Status:       values.Get("status"),
		StartDueDate: values.Get("start_due_date"),
		EndDueDate:   values.Get("end_due_date"),
	}
}

func parseFilter(qp queryParams) (invoicebus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter invoicebus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("invoice_id", err)
		}
	}

	if qp.TenantID != "" {
		id, err := uuid.Parse(qp.TenantID)
		switch err {
		case nil:
			filter.TenantID = &id
		default:
			fieldErrors.Add("tenant_id", err)
		}
	}

	if qp.Status != "" {
		status, err := invoicestatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &status
		default:
			fieldErrors.Add("status", err)
		}
	}

	if qp.StartDueDate != "" {
		t, err := time.Parse(time.RFC3339, qp.StartDueDate)
		switch err {
		case nil:
			filter.StartDueDate = &t
		default:
			fieldErrors.Add("start_due_date", err)
		}
	}

	if qp.EndDueDate != "" {
		t, err := time.Parse(time.RFC3339, qp.EndDueDate)
		switch err {
		case nil:
			filter.EndDueDate = &t
		default:
			fieldErrors.Add("end_due_date", err)
		}
	}

	if fieldErrors != nil {
		return invoicebus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
