package privacy

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/trackveil/internal/db"
)

// ErrNotFound is returned by Reverse when no mapping exists for a token.
var ErrNotFound = errors.New("token mapping not found")

// Category partitions the token mapping table.
type Category string

const (
	CategoryUsers       Category = "users"
	CategoryWorkstreams Category = "workstreams"
	CategoryNotes       Category = "notes"
)

// tokenPrefixes maps each category to the prefix of its generated tokens.
var tokenPrefixes = map[Category]string{
	CategoryUsers:       "User_",
	CategoryWorkstreams: "Workstream_",
	CategoryNotes:       "Note_",
}

// TokenMapper deterministically maps sensitive strings to stable pseudonyms
// and persists every mapping before handing the token out.
//
// Tokens are derived from a truncated SHA-256 digest (8 hex chars), so two
// distinct originals can in principle collide within a category. The
// probability is negligible for the closed field sets this system handles,
// but Reverse resolves a collision to the earliest-created mapping rather
// than detecting it.
type TokenMapper struct {
	mu   sync.Mutex
	conn db.DBTX
}

// NewTokenMapper creates a TokenMapper backed by the given connection.
// The token_mappings table must already exist (created by db.Migrate).
func NewTokenMapper(conn db.DBTX) *TokenMapper {
	return &TokenMapper{conn: conn}
}

// Resolve returns the stable token for original within category, minting and
// durably recording a new one on first use. An empty original resolves to the
// empty string and creates no mapping. Resolve never returns a token it
// failed to persist.
func (m *TokenMapper) Resolve(ctx context.Context, category Category, original string) (string, error) {
	if original == "" {
		return "", nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var token string
	err := m.conn.QueryRowContext(ctx,
		`SELECT token FROM token_mappings WHERE category = ? AND original = ?`,
		string(category), original,
	).Scan(&token)
	if err == nil {
		return token, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("looking up token mapping: %w", err)
	}

	token = tokenPrefixes[category] + hashValue(original)
	if _, err := m.conn.ExecContext(ctx,
		`INSERT INTO token_mappings (category, original, token) VALUES (?, ?, ?)`,
		string(category), original, token,
	); err != nil {
		return "", fmt.Errorf("persisting token mapping: %w", err)
	}
	tokensMinted.WithLabelValues(string(category)).Inc()
	return token, nil
}

// ResolveAll resolves a slice of originals in order, preserving length.
func (m *TokenMapper) ResolveAll(ctx context.Context, category Category, originals []string) ([]string, error) {
	if len(originals) == 0 {
		return nil, nil
	}
	tokens := make([]string, len(originals))
	for i, orig := range originals {
		tok, err := m.Resolve(ctx, category, orig)
		if err != nil {
			return nil, err
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Reverse returns the original value a token was minted for.
func (m *TokenMapper) Reverse(ctx context.Context, category Category, token string) (string, error) {
	var original string
	err := m.conn.QueryRowContext(ctx,
		`SELECT original FROM token_mappings
		 WHERE category = ? AND token = ? ORDER BY rowid LIMIT 1`,
		string(category), token,
	).Scan(&original)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("token %q in %s: %w", token, category, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("reversing token mapping: %w", err)
	}
	return original, nil
}

// ReverseAny tries every category in turn.
func (m *TokenMapper) ReverseAny(ctx context.Context, token string) (string, Category, error) {
	for _, cat := range []Category{CategoryUsers, CategoryWorkstreams, CategoryNotes} {
		original, err := m.Reverse(ctx, cat, token)
		if err == nil {
			return original, cat, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", "", err
		}
	}
	return "", "", fmt.Errorf("token %q: %w", token, ErrNotFound)
}

// hashValue returns the first 8 hex chars of the SHA-256 digest of value.
func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:8]
}
