// Package maintapp maintains the app layer api for the maintenance board.
package maintapp

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/query"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
)

type app struct {
	maintBus *maintbus.Core
}

func newApp(maintBus *maintbus.Core) *app {
	return &app{
		maintBus: maintBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewTicket
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	nt, err := toBusNewTicket(app, orgID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tkt, err := a.maintBus.Create(ctx, nt)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: tkt[%+v]: %s", app, err)
	}

	return toAppTicket(tkt)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateTicket
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tkt, err := a.queryTicketScoped(ctx, r.PathValue("ticket_id"))
	if err != nil {
		return errs.GetError(err)
	}

	ut, err := toBusUpdateTicket(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	upd, err := a.maintBus.Update(ctx, tkt, ut)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: ticketID[%s]: %s", tkt.ID, err)
	}

	return toAppTicket(upd)
}

func (a *app) move(ctx context.Context, r *http.Request) web.Encoder {
	var app MoveTicket
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tkt, err := a.queryTicketScoped(ctx, r.PathValue("ticket_id"))
	if err != nil {
		return errs.GetError(err)
	}

	status, err := ticketstatus.Parse(app.Status)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	moved, err := a.maintBus.Move(ctx, tkt, status, app.Position)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "move: ticketID[%s]: %s", tkt.ID, err)
	}

	return toAppTicket(moved)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	tkt, err := a.queryTicketScoped(ctx, r.PathValue("ticket_id"))
	if err != nil {
		return errs.GetError(err)
	}

	if err := a.maintBus.Delete(ctx, tkt); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: ticketID[%s]: %s", tkt.ID, err)
	}

	return web.NoResponse{}
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	pg, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}
	filter.OrgID = &orgID

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, maintbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	tkts, err := a.maintBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	total, err := a.maintBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count: %s", err)
	}

	return query.NewResult(toAppTickets(tkts), total, pg.Number(), pg.RowsPerPage())
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	tkt, err := a.queryTicketScoped(ctx, r.PathValue("ticket_id"))
	if err != nil {
		return errs.GetError(err)
	}

	return toAppTicket(tkt)
}

func (a *app) board(ctx context.Context, r *http.Request) web.Encoder {
	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	filter := maintbus.QueryFilter{
		OrgID: &orgID,
	}

	const rowsPerPage = 100

	var tkts []maintbus.Ticket
	for number := 1; ; number++ {
		pg, err := page.Parse(strconv.Itoa(number), strconv.Itoa(rowsPerPage))
		if err != nil {
			return errs.Errorf(errs.Internal, "page: %s", err)
		}

		batch, err := a.maintBus.Query(ctx, filter, maintbus.DefaultOrderBy, pg)
		if err != nil {
			return errs.Errorf(errs.InternalOnlyLog, "query board: %s", err)
		}

		tkts = append(tkts, batch...)
		if len(batch) < rowsPerPage {
			break
		}
	}

	return toAppBoard(tkts)
}

func (a *app) queryTicketScoped(ctx context.Context, id string) (maintbus.Ticket, error) {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return maintbus.Ticket{}, errs.NewFieldErrors("ticket_id", err).ToError()
	}

	tkt, err := a.maintBus.QueryByID(ctx, ticketID)
	if err != nil {
		switch {
		case errors.Is(err, maintbus.ErrNotFound):
			return maintbus.Ticket{}, errs.New(errs.NotFound, err)
		default:
			return maintbus.Ticket{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: ticketID[%s]: %s", ticketID, err)
		}
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return maintbus.Ticket{}, errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}
	if tkt.OrgID != orgID {
		return maintbus.Ticket{}, errs.New(errs.NotFound, maintbus.ErrNotFound)
	}

	return tkt, nil
}
