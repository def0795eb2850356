package tenantapp

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/tenantstatus"
)

type queryParams struct {
	Page       string
	Rows       string
	OrderBy    string
	ID         string
	PropertyID string
	UnitID     string
	Name       string
	Email      string
	Status     string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:       values.Get("page"),
		Rows:       values.Get("rows"),
		OrderBy:    values.Get("orderBy"),
		ID:         values.Get("tenant_id"),
		PropertyID: values.Get("property_id"),
		UnitID:     values.Get("unit_id"),
		Name:       values.Get("name"),
		Email:      values.Get("email"),
		Status:     values.Get("status"),
	}
}

func parseFilter(qp queryParams) (tenantbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter tenantbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("tenant_id", err)
		}
	}

	if qp.PropertyID != "" {
		id, err := uuid.Parse(qp.PropertyID)
		switch err {
		case nil:
			filter.PropertyID = &id
		default:
			fieldErrors.Add("property_id", err)
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

	if qp.Name != "" {
		nme, err := name.Parse(qp.Name)
		switch err {
		case nil:
			filter.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if qp.Email != "" {
		filter.Email = &qp.Email
	}

	if qp.Status != "" {
		status, err := tenantstatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &status
		default:
			fieldErrors.Add("status", err)
		}
	}

	if fieldErrors != nil {
		return tenantbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
