// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps search-result pages across restarts of a single instance

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

const (
	schema = `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache(expiry);
	`
	getQuery     = `SELECT value FROM cache WHERE key = ? AND expiry > ?`
	setQuery     = `INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)`
	deleteQuery  = `DELETE FROM cache WHERE key = ?`
	cleanupQuery = `DELETE FROM cache WHERE expiry <= ?`

	// noExpiry stands in for ttl <= 0
	noExpiry = int64(1<<63 - 1)

	cleanupInterval = 5 * time.Minute
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	logger   interfaces.Logger

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSQLiteCache opens (or creates) the cache database at filePath
func NewSQLiteCache(filePath string, logger interfaces.Logger) (*Client, error) {
	if filePath == "" {
		filePath = "catbytes-cache.db"
	}

	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY; :memory: databases are per-connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	c := &Client{
		db:       db,
		filePath: filePath,
		logger:   interfaces.LoggerOrNop(logger),
		stop:     make(chan struct{}),
	}
	go c.cleanupRoutine()

	return c, nil
}

// Get retrieves a live value; expired and missing keys return ErrCacheMiss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key, c.logger); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, getQuery, key, time.Now().UnixNano()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// Set stores a value with TTL; ttl <= 0 never expires
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}
	if err := ValidateValue(value); err != nil {
		return err
	}

	expiry := noExpiry
	if ttl > 0 {
		expiry = time.Now().Add(ttl).UnixNano()
	}

	if _, err := c.db.ExecContext(ctx, setQuery, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// Cleanup removes expired rows and reports how many were dropped
func (c *Client) Cleanup(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, cleanupQuery, time.Now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to clean up cache: %w", err)
	}
	return res.RowsAffected()
}

func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			removed, err := c.Cleanup(context.Background())
			if err != nil {
				c.logger.Warn("SQLite cache cleanup failed", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}
			if removed > 0 {
				c.logger.Debug("SQLite cache cleanup", map[string]interface{}{
					"removed": removed,
				})
			}
		}
	}
}

// Stats returns entry counts and the database size
func (c *Client) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{
		"file_path": c.filePath,
	}

	var total, expired int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache").Scan(&total); err != nil {
		return nil, err
	}
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache WHERE expiry <= ?", time.Now().UnixNano()).Scan(&expired); err != nil {
		return nil, err
	}
	stats["total_entries"] = total
	stats["expired_entries"] = expired

	var pageCount, pageSize int
	if err := c.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	return stats, nil
}

// Close stops the cleanup routine and closes the database
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return c.db.Close()
}
