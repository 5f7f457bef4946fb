// Package handler serves the proxy's HTTP routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/valenxo/Museo-MET/internal/collection"
	"github.com/valenxo/Museo-MET/internal/domain"
	"github.com/valenxo/Museo-MET/internal/fanout"
	"github.com/valenxo/Museo-MET/internal/httpx"
	"github.com/valenxo/Museo-MET/internal/i18n"
	"github.com/valenxo/Museo-MET/internal/logging"
	"github.com/valenxo/Museo-MET/internal/pager"
	"github.com/valenxo/Museo-MET/internal/query"
	"github.com/valenxo/Museo-MET/internal/views"
)

// Paging headers set on /search responses.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
	HeaderPage       = "X-Page"

	// ParamPage selects the 1-based result page of /search.
	ParamPage = "page"
)

// Collection is the upstream museum API as used by the handlers.
type Collection interface {
	Departments(ctx context.Context) ([]collection.Department, error)
	Search(ctx context.Context, f query.Filter) (collection.SearchResult, error)
	Object(ctx context.Context, id int) (collection.Object, error)
	Fetch(ctx context.Context, policy fanout.Policy, ids []int) ([]fanout.Result[collection.Object], error)
}

// Enricher translates display text of upstream records.
type Enricher interface {
	Departments(ctx context.Context, departments []collection.Department) []collection.Department
	Objects(ctx context.Context, objects []collection.Object) []collection.Object
}

// Config holds the request-independent handler settings.
type Config struct {
	Policy      fanout.Policy
	SearchLimit int
	Lang        string
	Logger      *slog.Logger
}

// Handler serves the proxy routes.
type Handler struct {
	collection Collection
	enricher   Enricher
	policy     fanout.Policy
	limit      int
	lang       string
	loc        *message.Printer
	logger     *slog.Logger
}

// New creates a Handler.
func New(c Collection, e Enricher, cfg Config) *Handler {
	if cfg.SearchLimit < 1 {
		cfg.SearchLimit = pager.DefaultPerPage
	}
	if cfg.Policy == "" {
		cfg.Policy = fanout.AllOrNothing
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	tag := i18n.Match(cfg.Lang)
	return &Handler{
		collection: c,
		enricher:   e,
		policy:     cfg.Policy,
		limit:      cfg.SearchLimit,
		lang:       tag.String(),
		loc:        message.NewPrinter(tag),
		logger:     cfg.Logger,
	}
}

// Routes returns the route table wrapped in the shared middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /search", h.search)
	mux.HandleFunc("GET /object/{objectID}", h.object)
	mux.HandleFunc("GET /api/departments", h.departments)
	mux.HandleFunc("GET /healthz", h.healthz)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(h.logger),
		httpx.RequestLogger(h.logger),
	)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	departments, err := h.collection.Departments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "index: list departments", "error", err)
		h.renderPage(w, r, http.StatusInternalServerError, views.Error(h.loc, h.lang, h.loc.Sprintf(i18n.IndexFailed)))
		return
	}
	h.renderPage(w, r, http.StatusOK, views.Index(h.loc, h.lang, h.enricher.Departments(ctx, departments)))
}

func (h *Handler) departments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	departments, err := h.collection.Departments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "api: list departments", "error", err)
		h.writeMessage(w, http.StatusInternalServerError, i18n.IndexFailed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"departments": h.enricher.Departments(ctx, departments),
	})
}

// failedObject marks an object whose lookup failed under the isolate policy.
type failedObject struct {
	ObjectID int    `json:"objectID"`
	Error    string `json:"error"`
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()

	filter := query.FilterFromValues(values)
	if err := filter.Validate(); err != nil {
		h.writeMessage(w, http.StatusBadRequest, i18n.MissingParams)
		return
	}
	page, err := parsePage(values.Get(ParamPage))
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, i18n.MissingParams)
		return
	}

	result, err := h.collection.Search(ctx, filter)
	if err != nil {
		switch domain.HTTPStatus(err) {
		case http.StatusNotFound:
			h.writeMessage(w, http.StatusNotFound, i18n.NoResults)
		case http.StatusBadRequest:
			h.writeMessage(w, http.StatusBadRequest, i18n.MissingParams)
		default:
			h.logger.ErrorContext(ctx, "search failed", "filter", filter.Encode(), "error", err)
			h.writeMessage(w, http.StatusInternalServerError, i18n.SearchFailed)
		}
		return
	}
	if result.Total == 0 || len(result.ObjectIDs) == 0 {
		h.writeMessage(w, http.StatusNotFound, i18n.NoResults)
		return
	}

	ids, meta := pager.Page(result.ObjectIDs, page, h.limit)
	results, err := h.collection.Fetch(ctx, h.policy, ids)
	if err != nil {
		h.logger.ErrorContext(ctx, "search: fetch objects", "count", len(ids), "error", err)
		h.writeMessage(w, http.StatusInternalServerError, i18n.SearchFailed)
		return
	}

	var (
		fetched   []collection.Object
		positions []int
	)
	for i, res := range results {
		if res.Err == nil {
			fetched = append(fetched, res.Value)
			positions = append(positions, i)
		}
	}
	translated := h.enricher.Objects(ctx, fetched)

	body := make([]any, len(results))
	for i, res := range results {
		if res.Err != nil {
			h.logger.WarnContext(ctx, "search: object lookup failed", "object_id", ids[i], "error", res.Err)
			body[i] = failedObject{ObjectID: ids[i], Error: h.loc.Sprintf(i18n.ObjectFailed)}
		}
	}
	for j, pos := range positions {
		body[pos] = translated[j]
	}

	w.Header().Set(HeaderTotalCount, strconv.Itoa(meta.Total))
	w.Header().Set(HeaderTotalPages, strconv.Itoa(meta.TotalPages))
	w.Header().Set(HeaderPage, strconv.Itoa(meta.Page))
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) object(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(r.PathValue("objectID"))
	if err != nil || id < 1 {
		h.writeMessage(w, http.StatusBadRequest, i18n.BadObjectID)
		return
	}

	obj, err := h.collection.Object(ctx, id)
	if err != nil {
		if domain.HTTPStatus(err) == http.StatusNotFound {
			h.writeMessage(w, http.StatusNotFound, i18n.ObjectMissing)
			return
		}
		h.logger.ErrorContext(ctx, "object lookup failed", "object_id", id, "error", err)
		h.writeMessage(w, http.StatusInternalServerError, i18n.ObjectFailed)
		return
	}
	h.renderPage(w, r, http.StatusOK, views.Object(h.loc, h.lang, obj))
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parsePage reads the page parameter. Absent means the first page.
func parsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, domain.Validation("parse page", "page %q is not a positive integer", raw)
	}
	return page, nil
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, key string) {
	if err := httpx.WriteJSONMessage(w, status, h.loc.Sprintf(key)); err != nil {
		h.logger.Warn("write response", "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	if err := httpx.WriteJSON(w, status, payload); err != nil {
		h.logger.Warn("write response", "error", err)
	}
}
