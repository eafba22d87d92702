package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gem5-vision/catalogd/internal/db"
	dbRedis "github.com/gem5-vision/catalogd/internal/db/redis"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
	"github.com/gem5-vision/catalogd/internal/domain/search/policy"
	"github.com/gem5-vision/catalogd/internal/domain/search/request"
	"github.com/gem5-vision/catalogd/internal/domain/search/result"
	catalogrepo "github.com/gem5-vision/catalogd/internal/repository/catalog"
	searchrepo "github.com/gem5-vision/catalogd/internal/repository/search"
	batchuc "github.com/gem5-vision/catalogd/internal/usecase/batch"
	filtersuc "github.com/gem5-vision/catalogd/internal/usecase/filters"
	healthuc "github.com/gem5-vision/catalogd/internal/usecase/health"
	listinguc "github.com/gem5-vision/catalogd/internal/usecase/listing"
	searchuc "github.com/gem5-vision/catalogd/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute services.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) (result.Page, error)
}

type batchUseCase interface {
	Find(ctx context.Context, ids, versions []string) ([]resource.Document, error)
}

type listingUseCase interface {
	List(ctx context.Context, gem5Version string, latestOnly bool) ([]resource.Document, error)
}

type filtersUseCase interface {
	Values(ctx context.Context) (map[string][]string, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the catalog SDK entry point.
type Client struct {
	store      db.Store
	indexName  string
	keyPrefix  string
	searchSvc  searchUseCase
	batchSvc   batchUseCase
	listingSvc listingUseCase
	filtersSvc filtersUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a catalog Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		indexName:     "catalog:idx",
		keyPrefix:     "catalog:resource:",
		maxCandidates: 1000,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("catalog: database address required (use WithRedis or WithAddrs)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("catalog: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	searchRepo := searchrepo.New(store, searchrepo.Config{
		IndexName:     cfg.indexName,
		MaxCandidates: cfg.maxCandidates,
	})
	catalogRepo := catalogrepo.New(store, catalogrepo.Config{
		IndexName:     cfg.indexName,
		KeyPrefix:     cfg.keyPrefix,
		MaxCandidates: cfg.maxCandidates,
	})

	return &Client{
		store:      store,
		indexName:  cfg.indexName,
		keyPrefix:  cfg.keyPrefix,
		searchSvc:  searchuc.New(searchRepo),
		batchSvc:   batchuc.New(catalogRepo),
		listingSvc: listinguc.New(catalogRepo),
		filtersSvc: filtersuc.New(catalogRepo),
		healthSvc:  healthuc.New(store, store, cfg.indexName),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// EnsureIndex creates the catalog search index if it does not exist.
func (c *Client) EnsureIndex(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ensure_index", start, err) }()

	def, err := catalogrepo.Schema(c.indexName, c.keyPrefix)
	if err != nil {
		return fmt.Errorf("build index schema: %w", err)
	}
	if err = c.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", c.indexName, err)
	}
	return nil
}

// Search runs the consolidated search pipeline and returns one page.
func (c *Client) Search(ctx context.Context, q SearchQuery) (page SearchPage, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	filters, err := filter.ParseMustInclude(encodeMustInclude(q.MustInclude))
	if err != nil {
		return SearchPage{}, err
	}

	pageNum := q.Page
	if pageNum == 0 {
		pageNum = request.DefaultPage
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = request.DefaultPageSize
	}

	req, err := request.New(q.Text, filters, policy.Parse(q.Sort), pageNum, pageSize)
	if err != nil {
		return SearchPage{}, err
	}

	res, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return SearchPage{}, err
	}
	return SearchPage{
		Documents:  res.Documents(),
		TotalCount: res.TotalCount(),
	}, nil
}

// FindBatch resolves id/version pairs. A version of AllVersions returns
// every stored version of that id. Missing entries are skipped.
func (c *Client) FindBatch(ctx context.Context, keys []BatchKey) (docs []resource.Document, err error) {
	start := time.Now()
	defer func() { c.obs.observe("find_batch", start, err) }()

	ids := make([]string, len(keys))
	versions := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.ID
		versions[i] = k.Version
	}
	return c.batchSvc.Find(ctx, ids, versions)
}

// ListAll returns entries compatible with the given simulator version
// ("major.minor" at minimum). With latestOnly, one entry per id.
func (c *Client) ListAll(ctx context.Context, gem5Version string, latestOnly bool) (docs []resource.Document, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_all", start, err) }()

	return c.listingSvc.List(ctx, gem5Version, latestOnly)
}

// Filters enumerates the distinct values of every filterable field.
func (c *Client) Filters(ctx context.Context) (values map[string][]string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("filters", start, err) }()

	return c.filtersSvc.Values(ctx)
}

// encodeMustInclude renders structured filters in the wire format the
// domain parser accepts: "field,v1,v2;field2,v1". Fields are emitted in
// sorted order so queries are deterministic.
func encodeMustInclude(filters map[string][]string) string {
	if len(filters) == 0 {
		return ""
	}

	fields := make([]string, 0, len(filters))
	for f := range filters {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	groups := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(filters[f]) == 0 {
			continue
		}
		groups = append(groups, f+","+strings.Join(filters[f], ","))
	}
	return strings.Join(groups, ";")
}
