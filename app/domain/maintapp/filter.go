package maintapp

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/priority"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
)

type queryParams struct {
	Page     string
	Rows     string
	OrderBy  string
	ID       string
	UnitID   string
	TenantID string
	Status   string
	Priority string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:     values.Get("page"),
		Rows:     values.Get("rows"),
		OrderBy:  values.Get("orderBy"),
		ID:       values.Get("ticket_id"),
		UnitID:   values.Get("unit_id"),
		TenantID: values.Get("tenant_id"),
		Status:   values.Get("status"),
		Priority: values.Get("priority"),
	}
}

func parseFilter(qp queryParams) (maintbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter maintbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("ticket_id", err)
		}
	}

	if qp.UnitID != "" {
		id, err := uuid.Parse(qp.UnitID)
		switch err {
		case nil:
			filter.UnitID = &id
		default:
			fieldErrors.Add("unit_id", err)
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
		status, err := ticketstatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &status
		default:
			fieldErrors.Add("status", err)
		}
	}

	if qp.Priority != "" {
		pri, err := priority.Parse(qp.Priority)
		switch err {
		case nil:
			filter.Priority = &pri
		default:
			fieldErrors.Add("priority", err)
		}
	}

	return filter, fieldErrors.ToError()
}
