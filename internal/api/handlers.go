package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/planner"
	"github.com/starford/dagaz/internal/sse"
)

// Handler holds API route handlers.
type Handler struct {
	store     *planner.Store
	projector planner.Projector
	exporter  planner.Exporter
	broker    *sse.Broker // optional; nil disables push notifications
	now       func() time.Time
}

// NewHandler creates a new Handler. broker may be nil.
func NewHandler(store *planner.Store, projector planner.Projector, exporter planner.Exporter, broker *sse.Broker) *Handler {
	return &Handler{
		store:     store,
		projector: projector,
		exporter:  exporter,
		broker:    broker,
		now:       time.Now,
	}
}

func (h *Handler) notify(kind, id string) {
	if h.broker != nil {
		h.broker.PublishPlanEvent(kind, id)
	}
}

// cursorDate resolves the ?cursor=YYYY-MM-DD query parameter; a missing
// cursor anchors the view on today.
func (h *Handler) cursorDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("cursor")
	if raw == "" {
		return h.now(), nil
	}
	return time.ParseInLocation(planner.DateLayout, raw, time.Local)
}

// ListEvents handles GET /api/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.Load()
	if err != nil {
		slog.Error("list events failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, EventListResponse{Events: list, Total: len(list)})
}

// CreateEvent handles POST /api/events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	ev := planner.Event{Title: req.Title, Type: req.Type, Date: req.Date, Time: req.Time}
	list, err := h.store.Add(ev)
	if err != nil {
		if isClientError(err) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("create event failed", slog.String("title", req.Title), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	created := list[len(list)-1]
	h.notify("created", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// DeleteEvent handles DELETE /api/events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.store.DeleteByID(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("delete event failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	h.notify("deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// DayView handles GET /api/views/day.
func (h *Handler) DayView(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursorDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid cursor date"))
		return
	}
	list, err := h.store.Load()
	if err != nil {
		slog.Error("day view failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, h.projector.Day(list, cursor))
}

// WeekView handles GET /api/views/week.
func (h *Handler) WeekView(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursorDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid cursor date"))
		return
	}
	list, err := h.store.Load()
	if err != nil {
		slog.Error("week view failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	cells := h.projector.Week(list, cursor, h.now())
	writeJSON(w, http.StatusOK, WeekViewResponse{
		Start: planner.ISODate(planner.StartOfWeek(cursor)),
		Cells: cells,
	})
}

// MonthView handles GET /api/views/month.
func (h *Handler) MonthView(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursorDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid cursor date"))
		return
	}
	list, err := h.store.Load()
	if err != nil {
		slog.Error("month view failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, MonthViewResponse{
		Year:  cursor.Year(),
		Month: int(cursor.Month()),
		Cells: h.projector.Month(list, cursor, h.now()),
	})
}

// DashboardView handles GET /api/views/dashboard.
func (h *Handler) DashboardView(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.Load()
	if err != nil {
		slog.Error("dashboard failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, h.projector.Today(list, h.now()))
}

// ExportInvite handles GET /api/events/{id}/invite.
func (h *Handler) ExportInvite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ev, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("export invite failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	invite, err := h.exporter.InviteText(ev)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidEventTime) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("export invite failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(invite))
}

// ShareEvent handles POST /api/events/{id}/share.
func (h *Handler) ShareEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ev, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("share event failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	var req ShareEventRequest
	if r.Body != nil {
		// Body is optional; decode errors on an empty body are fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	recipient := req.To
	if recipient == "" {
		recipient, err = h.store.WorkEmail()
		if err != nil {
			slog.Error("share event failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			return
		}
	}

	draft, err := h.exporter.ShareDraft(ev, recipient)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrMissingRecipient):
			writeJSON(w, http.StatusBadRequest, errorBody("no recipient configured; set a work email first"))
		case errors.Is(err, apperr.ErrInvalidEventTime):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		default:
			slog.Error("share event failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// GetEmail handles GET /api/settings/email.
func (h *Handler) GetEmail(w http.ResponseWriter, r *http.Request) {
	email, err := h.store.WorkEmail()
	if err != nil {
		slog.Error("get email failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, EmailResponse{Email: email})
}

// PutEmail handles PUT /api/settings/email.
func (h *Handler) PutEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req EmailResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.store.SetWorkEmail(req.Email); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	h.notify("email", "")
	writeJSON(w, http.StatusOK, EmailResponse{Email: req.Email})
}

// isClientError reports whether err stems from caller input rather than
// the storage backend.
func isClientError(err error) bool {
	if errors.Is(err, apperr.ErrInvalidEventTime) {
		return true
	}
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
