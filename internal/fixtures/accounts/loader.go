// Package accounts holds the seed accounts used by the in-memory store and
// by tests.
package accounts

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/amirasaad/banktransfer/infra/memory"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/shopspring/decimal"
)

// Seed account ids. Unknown is never present in a seeded store.
const (
	Source      = "A123"
	Destination = "C456"
	Unknown     = "Z999"
)

// OpeningBalance is the balance of every embedded seed account.
var OpeningBalance = money.Must("1000.00")

//go:embed accounts.csv
var accountsCSV string

// Seed is one account and its opening balance.
type Seed struct {
	ID      string
	Balance decimal.Decimal
}

// LoadAccountsCSV reads seeds from a CSV file with an id,balance header.
// An empty path reads the embedded seeds.
func LoadAccountsCSV(path string) ([]Seed, error) {
	var r io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		r = f
	} else {
		r = strings.NewReader(accountsCSV)
	}
	return parseAccountsCSV(r)
}

func parseAccountsCSV(r io.Reader) ([]Seed, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	var seeds []Seed
	for i, rec := range records {
		if i == 0 {
			if len(rec) < 2 {
				return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns, got %d", len(rec))
			}
			continue
		}
		if len(rec) < 2 {
			continue
		}
		balance, err := money.Parse(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: account %s: %w", i+1, rec[0], err)
		}
		seeds = append(seeds, Seed{ID: strings.TrimSpace(rec[0]), Balance: balance})
	}
	return seeds, nil
}

// ParsePairs converts id:balance pairs, as read from MEMORY_ACCOUNTS, to seeds
// sorted by id.
func ParsePairs(pairs map[string]string) ([]Seed, error) {
	seeds := make([]Seed, 0, len(pairs))
	for id, raw := range pairs {
		balance, err := money.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}
		seeds = append(seeds, Seed{ID: strings.TrimSpace(id), Balance: balance})
	}
	slices.SortFunc(seeds, func(a, b Seed) int { return strings.Compare(a.ID, b.ID) })
	return seeds, nil
}

// NewStore returns a memory store holding seeds.
func NewStore(seeds ...Seed) *memory.Store {
	store := memory.NewStore()
	for _, s := range seeds {
		store.Put(s.ID, s.Balance)
	}
	return store
}

// NewAccountStore returns a memory store holding the embedded seeds: Source
// and Destination with OpeningBalance each.
func NewAccountStore() *memory.Store {
	seeds, err := LoadAccountsCSV("")
	if err != nil {
		panic(err)
	}
	return NewStore(seeds...)
}
