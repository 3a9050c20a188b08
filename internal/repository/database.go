package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"contentnav/internal/config"
	"contentnav/internal/domain"
	models "contentnav/internal/domain/models/content"
	"contentnav/internal/domain/repositories"
	"contentnav/internal/repository/postgres"
	"contentnav/internal/repository/sqlite"
)

// Backend names the database a ContentDatabase connects to
type Backend string

const (
	BackendLocal    Backend = "local"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendD1       Backend = "d1"
)

var fromTable = regexp.MustCompile(`FROM\s+(\w+)`)

// SelectBackend picks the database for cfg. Dev and prerender always use the
// local SQLite file; otherwise DATABASE_TYPE decides, falling back to local.
func SelectBackend(cfg *config.Config) Backend {
	if cfg.Prerender || cfg.Environment == "dev" {
		return BackendLocal
	}
	switch Backend(cfg.DatabaseType) {
	case BackendD1:
		return BackendD1
	case BackendSQLite:
		return BackendSQLite
	case BackendPostgres:
		return BackendPostgres
	default:
		return BackendLocal
	}
}

// ContentDatabase is the DatabaseAdapter the content layer talks to.
// It connects on first use and decodes JSON columns of collection tables.
type ContentDatabase struct {
	backend     Backend
	connect     func(ctx context.Context) (repositories.DatabaseAdapter, error)
	collections map[string]*models.Collection // keyed by table
	logger      *slog.Logger

	mu      sync.Mutex
	adapter repositories.DatabaseAdapter
}

// NewContentDatabase creates a lazily connected database for cfg
func NewContentDatabase(cfg *config.Config, collections []models.Collection, logger *slog.Logger) *ContentDatabase {
	db := &ContentDatabase{
		backend:     SelectBackend(cfg),
		collections: indexByTable(collections),
		logger:      logger,
	}
	db.connect = func(ctx context.Context) (repositories.DatabaseAdapter, error) {
		return openBackend(ctx, db.backend, cfg, logger)
	}
	return db
}

// NewContentDatabaseFromAdapter wraps an already opened adapter
func NewContentDatabaseFromAdapter(adapter repositories.DatabaseAdapter, collections []models.Collection, logger *slog.Logger) *ContentDatabase {
	backend := BackendSQLite
	if adapter.Dialect() == repositories.DialectPostgres {
		backend = BackendPostgres
	}
	return &ContentDatabase{
		backend:     backend,
		collections: indexByTable(collections),
		logger:      logger,
		adapter:     adapter,
	}
}

func indexByTable(collections []models.Collection) map[string]*models.Collection {
	byTable := make(map[string]*models.Collection, len(collections))
	for i := range collections {
		byTable[collections[i].Table] = &collections[i]
	}
	return byTable
}

func openBackend(ctx context.Context, backend Backend, cfg *config.Config, logger *slog.Logger) (repositories.DatabaseAdapter, error) {
	switch backend {
	case BackendD1:
		return nil, fmt.Errorf("%w: database type d1", domain.ErrUnsupported)
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for postgres")
		}
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewAdapter(&postgres.RepositoryConfig{Pool: pool, Logger: logger}), nil
	}

	path := cfg.LocalDatabasePath
	if backend == BackendSQLite && cfg.DatabaseURL != "" {
		path = cfg.DatabaseURL
	}
	adapter, err := sqlite.Open(path, logger)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

// Adapter returns the underlying adapter, connecting on first call
func (d *ContentDatabase) Adapter(ctx context.Context) (repositories.DatabaseAdapter, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.adapter != nil {
		return d.adapter, nil
	}
	adapter, err := d.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect %s database: %w", d.backend, err)
	}
	d.logger.Info("content database connected", "backend", d.backend)
	d.adapter = adapter
	return adapter, nil
}

// Backend reports which database this instance uses
func (d *ContentDatabase) Backend() Backend {
	return d.backend
}

// All runs a query and decodes the JSON columns of every row
func (d *ContentDatabase) All(ctx context.Context, sql string, args ...any) ([]repositories.Row, error) {
	adapter, err := d.Adapter(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := adapter.All(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []repositories.Row{}, nil
	}

	jsonFields := d.jsonFields(sql)
	for i := range rows {
		rows[i] = parseJSONFields(rows[i], jsonFields)
	}
	return rows, nil
}

// First runs a query and decodes the JSON columns of its first row
func (d *ContentDatabase) First(ctx context.Context, sql string, args ...any) (repositories.Row, error) {
	adapter, err := d.Adapter(ctx)
	if err != nil {
		return nil, err
	}
	row, err := adapter.First(ctx, sql, args...)
	if err != nil || row == nil {
		return row, err
	}
	return parseJSONFields(row, d.jsonFields(sql)), nil
}

// Exec runs a statement that returns no rows
func (d *ContentDatabase) Exec(ctx context.Context, sql string, args ...any) error {
	adapter, err := d.Adapter(ctx)
	if err != nil {
		return err
	}
	return adapter.Exec(ctx, sql, args...)
}

// ExecTx runs fn inside a transaction of the underlying adapter
func (d *ContentDatabase) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	adapter, err := d.Adapter(ctx)
	if err != nil {
		return err
	}
	return adapter.ExecTx(ctx, fn)
}

// Dialect reports the placeholder style of the selected backend without connecting
func (d *ContentDatabase) Dialect() repositories.Dialect {
	if d.backend == BackendPostgres {
		return repositories.DialectPostgres
	}
	return repositories.DialectSQLite
}

// Close closes the adapter if it was ever opened
func (d *ContentDatabase) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.adapter == nil {
		return nil
	}
	err := d.adapter.Close()
	d.adapter = nil
	return err
}

// jsonFields returns the JSON columns of the collection table the query reads
func (d *ContentDatabase) jsonFields(sql string) []string {
	match := fromTable.FindStringSubmatch(sql)
	if match == nil {
		return nil
	}
	collection, ok := d.collections[match[1]]
	if !ok {
		return nil
	}
	if len(collection.JSONFields) > 0 {
		return collection.JSONFields
	}
	return models.DefaultJSONFields
}

// parseJSONFields decodes the named text columns of row in place.
// Values that are empty, "undefined" or not valid JSON are left as they are.
func parseJSONFields(row repositories.Row, fields []string) repositories.Row {
	for _, field := range fields {
		raw, ok := row[field].(string)
		if !ok || raw == "" || raw == "undefined" {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			continue
		}
		row[field] = decoded
	}
	return row
}
