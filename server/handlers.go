package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/agent"
	"github.com/go-chi/chi/v5"
)

// Extractor reads a property from free text.
type Extractor interface {
	Extract(ctx context.Context, text string) (rentals.Draft, error)
}

// Advisor writes a narrative over the collection.
type Advisor interface {
	Advise(ctx context.Context, props []rentals.Property) (string, error)
}

// Handler serves the API over a store.
type Handler struct {
	store     *rentals.Store
	extractor Extractor
	advisor   Advisor
	log       *slog.Logger

	extract agent.Call[rentals.Property]
	advise  agent.Call[string]
}

// NewHandler creates the handlers. A nil extractor or advisor answers with
// NOT_CONFIGURED.
func NewHandler(store *rentals.Store, extractor Extractor, advisor Advisor, log *slog.Logger) *Handler {
	return &Handler{store: store, extractor: extractor, advisor: advisor, log: log}
}

// ListProperties handles GET /api/properties?q=&sort=&dir=.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	props := rentals.Filter(h.store.All(), q.Get("q"))
	if s := q.Get("sort"); s != "" {
		key, err := rentals.ParseSortKey(s)
		if err != nil {
			badRequest(w, err)
			return
		}
		dir, err := rentals.ParseDirection(q.Get("dir"))
		if err != nil {
			badRequest(w, err)
			return
		}
		props = rentals.Sort(props, key, dir)
	}
	RespondWithJSON(w, http.StatusOK, props)
}

// GetProperty handles GET /api/properties/{id}.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := h.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, fmt.Errorf("%w: %s", rentals.ErrNotFound, chi.URLParam(r, "id")))
		return
	}
	RespondWithJSON(w, http.StatusOK, p)
}

// CreateProperty handles POST /api/properties. Omitted fields get their
// default value.
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var d rentals.Draft
	if err := decode(r, &d); err != nil {
		badRequest(w, err)
		return
	}
	p := d.Merge(rentals.NewProperty())
	if _, err := h.store.Upsert(r.Context(), p); !warn(w, err) {
		writeError(w, err)
		return
	}
	h.log.Info("property created", "id", p.ID, "name", p.Name)
	RespondWithJSON(w, http.StatusCreated, p)
}

// UpdateProperty handles PUT /api/properties/{id}: fields present in the body
// replace the stored ones.
func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	base, ok := h.store.Get(id)
	if !ok {
		writeError(w, fmt.Errorf("%w: %s", rentals.ErrNotFound, id))
		return
	}
	var d rentals.Draft
	if err := decode(r, &d); err != nil {
		badRequest(w, err)
		return
	}
	p := d.Merge(base)
	if _, err := h.store.Upsert(r.Context(), p); !warn(w, err) {
		writeError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, p)
}

// DeleteProperty handles DELETE /api/properties/{id}. Deleting an unknown id
// succeeds.
func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Remove(r.Context(), chi.URLParam(r, "id")); !warn(w, err) {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, rentals.NewStats(h.store.All()))
}

type chartResponse struct {
	Rendered bool `json:"rendered"`
	*rentals.Chart
}

// Chart handles GET /api/chart. With fewer than 2 properties the chart is
// not rendered.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	c, ok := rentals.NewChart(h.store.All())
	RespondWithJSON(w, http.StatusOK, chartResponse{Rendered: ok, Chart: c})
}

type extractRequest struct {
	Text string            `json:"text"`
	Base *rentals.Property `json:"base,omitempty"`
}

// Extract handles POST /api/extract. It returns the extracted fields merged
// over base, or over a new property, without saving anything.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if h.extractor == nil {
		writeError(w, agent.ErrNotConfigured)
		return
	}
	base := rentals.NewProperty()
	if req.Base != nil {
		base = *req.Base
	}
	p, err := h.extract.Do(r.Context(), func(ctx context.Context) (rentals.Property, error) {
		d, err := h.extractor.Extract(ctx, req.Text)
		if err != nil {
			return rentals.Property{}, err
		}
		return d.Merge(base), nil
	})
	if err != nil {
		h.log.Warn("extraction failed", "err", err)
		writeError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, p)
}

// Advisory handles POST /api/advisory.
func (h *Handler) Advisory(w http.ResponseWriter, r *http.Request) {
	if h.advisor == nil {
		writeError(w, agent.ErrNotConfigured)
		return
	}
	props := h.store.All()
	narrative, err := h.advise.Do(r.Context(), func(ctx context.Context) (string, error) {
		return h.advisor.Advise(ctx, props)
	})
	if err != nil {
		h.log.Warn("advisory failed", "err", err)
		writeError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"narrative": narrative})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
