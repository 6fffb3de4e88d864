// Package session provides access to the per-caller data collected before a
// report is requested: the caller identifier, the tax rate and either one
// batch of transactions or two batches to compare.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/sales-analytics-report/internal/types"
)

// ErrNotFound is returned when no session exists for a key.
var ErrNotFound = errors.New("session not found")

// Data is the stored state of one caller's session.
type Data struct {
	CallerID types.ID `json:"telegram_id"`

	// Tax is a percentage; nil means "not set".
	Tax *float64 `json:"tax"`

	Transactions        []types.Transaction `json:"valid_transactions"`
	TransactionsPeriod1 []types.Transaction `json:"valid_transactions_period_1"`
	TransactionsPeriod2 []types.Transaction `json:"valid_transactions_period_2"`
}

// Store fetches session data.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Store
type Store interface {
	GetData(ctx context.Context, key string) (*Data, error)
}

// FileStore keeps each session as <Dir>/<key>.json.
type FileStore struct {
	Dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// GetData reads and decodes the session stored under key.
func (s *FileStore) GetData(ctx context.Context, key string) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return nil, fmt.Errorf("invalid session key %q", key)
	}
	return ReadFile(filepath.Join(s.Dir, key+".json"))
}

// ReadFile decodes a single session file.
func ReadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return decode(raw, path)
}

func decode(raw []byte, source string) (*Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", source, err)
	}
	return &data, nil
}

// SingleFile is a Store that serves one session file for any key.
type SingleFile string

// GetData implements Store.
func (p SingleFile) GetData(ctx context.Context, _ string) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadFile(string(p))
}
