package propertyapp

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
)

type queryParams struct {
	Page         string
	Rows         string
	OrderBy      string
	ID           string
	Name         string
	PropertyType string
	PropertyID   string
	Status       string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:         values.Get("page"),
		Rows:         values.Get("rows"),
		OrderBy:      values.Get("orderBy"),
		ID:           values.Get("id"),
		Name:         values.Get("name"),
		PropertyType: values.Get("property_type"),
		PropertyID:   values.Get("property_id"),
		Status:       values.Get("status"),
	}
}

func parseFilter(qp queryParams) (propertybus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter propertybus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("id", err)
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

	if qp.PropertyType != "" {
		filter.PropertyType = &qp.PropertyType
	}

	if fieldErrors != nil {
		return propertybus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}

func parseUnitFilter(qp queryParams) (unitbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter unitbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("id", err)
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

	if qp.Status != "" {
		status, err := unitstatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &status
		default:
			fieldErrors.Add("status", err)
		}
	}

	if fieldErrors != nil {
		return unitbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
