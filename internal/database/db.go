package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Handle is the database collaborator seen by the diagnostic probe.
// ListCollections is a live call: it fails when the server is unreachable
// even though the handle itself was created.
type Handle interface {
	ListCollections(ctx context.Context) ([]string, error)
}

// Namer is implemented by handles that expose a database name.
type Namer interface {
	Name() string
}

// SQLHandle adapts a *sql.DB to Handle.  Tables play the role of
// collections.
type SQLHandle struct {
	db        *sql.DB
	name      string
	listQuery string
}

// Name returns the configured database name, possibly empty.
func (h *SQLHandle) Name() string { return h.name }

// DB exposes the underlying pool.
func (h *SQLHandle) DB() *sql.DB { return h.db }

// ListCollections returns table names in the order the server yields them.
func (h *SQLHandle) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, h.listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Close releases the pool.
func (h *SQLHandle) Close() error { return h.db.Close() }

// OpenMySQL builds a MySQL handle from either a mysql:// URL or a native
// driver DSN.  No connection is made here; the pool dials on first use.
func OpenMySQL(rawURL, name string) (*SQLHandle, error) {
	cfg, err := mysqlConfig(rawURL, name)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)

	// Pool settings
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if name == "" {
		name = cfg.DBName
	}
	return &SQLHandle{db: db, name: name, listQuery: "SHOW TABLES"}, nil
}

func mysqlConfig(rawURL, name string) (*mysql.Config, error) {
	var cfg *mysql.Config
	if strings.HasPrefix(rawURL, "mysql://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse mysql url: %w", err)
		}
		addr := u.Host
		if u.Port() == "" {
			addr = net.JoinHostPort(u.Hostname(), "3306")
		}
		// Query parameters (tls, charset, loc, ...) follow the driver's DSN
		// rules, so let the driver parse them against the real address.
		cfg, err = mysql.ParseDSN("tcp(" + addr + ")/?" + u.RawQuery)
		if err != nil {
			return nil, fmt.Errorf("parse mysql url params: %w", err)
		}
		if u.User != nil {
			cfg.User = u.User.Username()
			cfg.Passwd, _ = u.User.Password()
		}
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
	} else {
		parsed, err := mysql.ParseDSN(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg = parsed
	}
	if cfg.DBName == "" {
		cfg.DBName = name
	}
	// parseTime=true -> DATETIME -> time.Time; loc stays UTC unless given.
	cfg.ParseTime = true
	if cfg.Collation == "" {
		cfg.Collation = "utf8mb4_general_ci"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return cfg, nil
}

// OpenSQLite builds a SQLite handle.  rawURL may be sqlite://path,
// sqlite:path, a file: URI or a bare path.
func OpenSQLite(rawURL, name string) (*SQLHandle, error) {
	dsn := sqliteDSN(rawURL)
	if dsn == "" {
		return nil, fmt.Errorf("sqlite: empty path in %q", rawURL)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if name == "" {
		path := strings.TrimPrefix(strings.SplitN(dsn, "?", 2)[0], "file:")
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &SQLHandle{
		db:        db,
		name:      name,
		listQuery: "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'",
	}, nil
}

func sqliteDSN(rawURL string) string {
	path := rawURL
	switch {
	case strings.HasPrefix(path, "sqlite://"):
		path = strings.TrimPrefix(path, "sqlite://")
	case strings.HasPrefix(path, "sqlite:"):
		path = strings.TrimPrefix(path, "sqlite:")
	}
	if path == "" || path == "file:" {
		return ""
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}
