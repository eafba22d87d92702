// Package chi exposes the catalog API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
	"github.com/gem5-vision/catalogd/internal/domain/search/policy"
	"github.com/gem5-vision/catalogd/internal/domain/search/request"
	batchuc "github.com/gem5-vision/catalogd/internal/usecase/batch"
	filtersuc "github.com/gem5-vision/catalogd/internal/usecase/filters"
	healthuc "github.com/gem5-vision/catalogd/internal/usecase/health"
	listinguc "github.com/gem5-vision/catalogd/internal/usecase/listing"
	searchuc "github.com/gem5-vision/catalogd/internal/usecase/search"
)

// Server holds the API handlers and their dependencies.
type Server struct {
	search  *searchuc.Service
	batch   *batchuc.Service
	listing *listinguc.Service
	filters *filtersuc.Service
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	batch *batchuc.Service,
	listing *listinguc.Service,
	filters *filtersuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:  search,
		batch:   batch,
		listing: listing,
		filters: filters,
		health:  health,
		logger:  logger,
	}
}

// RegisterRoutes mounts all API routes on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/resources/search", s.handleSearch)
	r.Get("/resources/find-resources-in-batch", s.handleFindBatch)
	r.Get("/resources/filters", s.handleFilters)
	r.Get("/resources/list-all-resources", s.handleListAll)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
}

// handleSearch handles GET /resources/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	phrase := sanitizeContainsStr(q.Get("contains-str"))

	filters, err := filter.ParseMustInclude(sanitizeMustInclude(q.Get("must-include")))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	sort := policy.Parse(q.Get("sort"))

	page, pageSize, err := parsePagination(q.Get("page"), q.Get("page-size"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	req, err := request.New(phrase, filters, sort, page, pageSize)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	result, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"documents":  nonNil(result.Documents()),
		"totalCount": result.TotalCount(),
	})
}

// handleFindBatch handles GET /resources/find-resources-in-batch.
func (s *Server) handleFindBatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawIDs := q["id"]
	rawVersions := q["resource_version"]

	ids := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id := sanitizeID(raw)
		if id == "" {
			writeError(w, http.StatusBadRequest, "Invalid 'id' parameter format")
			return
		}
		ids = append(ids, id)
	}

	versions := make([]string, 0, len(rawVersions))
	for _, raw := range rawVersions {
		if raw == batchuc.AllVersions {
			versions = append(versions, raw)
			continue
		}
		version := sanitizeVersion(raw)
		if version == "" {
			writeError(w, http.StatusBadRequest, "Invalid 'resource_version' parameter format")
			return
		}
		versions = append(versions, version)
	}

	documents, err := s.batch.Find(r.Context(), ids, versions)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(documents))
}

// handleFilters handles GET /resources/filters.
func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	values, err := s.filters.Values(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// handleListAll handles GET /resources/list-all-resources.
func (s *Server) handleListAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := q.Get("gem5-version")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "'gem5-version' parameter is required")
		return
	}

	version := sanitizeVersion(raw)
	if version == "" {
		writeError(w, http.StatusBadRequest, "Invalid 'gem5-version' parameter format")
		return
	}

	latestOnly := q.Get("latest-version") == "true"

	documents, err := s.listing.List(r.Context(), version, latestOnly)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(documents))
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// parsePagination parses the page parameters, applying defaults for absent
// values. Range checks live in request.New; only syntax is rejected here.
func parsePagination(pageStr, pageSizeStr string) (int, int, error) {
	page := request.DefaultPage
	pageSize := request.DefaultPageSize

	var err error
	if pageStr != "" {
		if page, err = strconv.Atoi(pageStr); err != nil {
			return 0, 0, domain.NewInvalidRequest("Invalid pagination parameters")
		}
	}
	if pageSizeStr != "" {
		if pageSize, err = strconv.Atoi(pageSizeStr); err != nil {
			return 0, 0, domain.NewInvalidRequest("Invalid pagination parameters")
		}
	}
	return page, pageSize, nil
}

// nonNil keeps empty result sets rendering as [] instead of null.
func nonNil(documents []resource.Document) []resource.Document {
	if documents == nil {
		return []resource.Document{}
	}
	return documents
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleDomainError maps pipeline errors onto the API error contract:
// validation failures carry their message at 400, everything else is an
// opaque 500 with the cause logged only.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		writeError(w, http.StatusBadRequest, reqErr.Message)
		return
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
