// Package db caches analysis results in sqlite, keyed by document identity,
// so an unchanged manuscript is not re-analyzed. The analysis engine itself
// never touches this; it belongs to the calling side.
package db

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"quillpilot/internal/analysis"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS results (
    doc_key TEXT PRIMARY KEY,
    title TEXT,
    created_at TEXT,
    payload TEXT
);
`

type Cache struct {
	conn *sql.DB
}

func Open(path string) (*Cache, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Cache{conn: conn}, nil
}

func (c *Cache) Close() error {
	return c.conn.Close()
}

// Key derives the document identity from the text snapshot plus every option
// that changes the result: style, pagination, outline, and the character list
// with its registry aliases.
func Key(text string, opts analysis.Options) string {
	h := sha256.New()
	h.Write([]byte(opts.Style))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d;", opts.PageCountOverride)
	for _, b := range opts.PageBreaks {
		fmt.Fprintf(h, "%d,", b)
	}
	h.Write([]byte{0})
	for _, e := range opts.Outline {
		fmt.Fprintf(h, "%s|%d|%d|%d;", e.Title, e.Level, e.Start, e.End)
	}
	h.Write([]byte{0})
	for _, name := range opts.Characters {
		h.Write([]byte(name))
		h.Write([]byte{0})
		if opts.Registry != nil {
			for _, a := range opts.Registry.AliasesFor(name) {
				h.Write([]byte(a))
				h.Write([]byte{1})
			}
		}
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))[:32]
}

func (c *Cache) Store(key, title string, res analysis.Results) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = c.conn.Exec(
		`INSERT INTO results(doc_key, title, created_at, payload) VALUES(?,?,?,?)
		 ON CONFLICT(doc_key) DO UPDATE SET title=excluded.title, created_at=excluded.created_at, payload=excluded.payload`,
		key, title, time.Now().UTC().Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return fmt.Errorf("store results: %w", err)
	}
	return nil
}

// Lookup returns the cached results for key, or ok=false on a miss.
func (c *Cache) Lookup(key string) (analysis.Results, bool, error) {
	var payload string
	err := c.conn.QueryRow(`SELECT payload FROM results WHERE doc_key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return analysis.Results{}, false, nil
	}
	if err != nil {
		return analysis.Results{}, false, fmt.Errorf("lookup results: %w", err)
	}
	var res analysis.Results
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return analysis.Results{}, false, fmt.Errorf("decode cached results: %w", err)
	}
	return res, true, nil
}
