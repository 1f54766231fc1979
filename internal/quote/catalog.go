// Package quote supplies readable quotes. Texts are parsed externally; the
// catalog only holds the resulting quote lists plus the built-in fallback
// packs used before the reader uploads anything. The catalog is an
// explicitly constructed value injected into the progression service, not
// a module-level singleton.
package quote

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/utils"
)

// Pack is a named built-in quote collection.
type Pack struct {
	Name   string   `json:"name"`
	Source string   `json:"source"`
	Quotes []string `json:"quotes"`
}

// Catalog holds registered text quote lists and the fallback corpus.
type Catalog struct {
	mu       sync.RWMutex
	texts    map[string][]domain.Quote
	owner    map[string]string // quote id -> file id
	fallback []domain.Quote
}

// NewCatalog creates a catalog seeded with the built-in fallback packs.
func NewCatalog() *Catalog {
	c := &Catalog{
		texts: make(map[string][]domain.Quote),
		owner: make(map[string]string),
	}
	c.fallback = packsToQuotes(builtinPacks)
	return c
}

// LoadPacks replaces the fallback corpus with packs read from a JSON file.
// The built-in corpus stays in place on any load error.
func (c *Catalog) LoadPacks(path string) error {
	var packs []Pack
	if err := utils.LoadJSON(path, &packs); err != nil {
		return fmt.Errorf("failed to load quote packs: %w", err)
	}
	if len(packs) == 0 {
		return fmt.Errorf("quote pack file %s contains no packs", path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = packsToQuotes(packs)
	return nil
}

// Register stores the quote list for an uploaded text, replacing any
// previous list under the same file id.
func (c *Catalog) Register(fileID string, quotes []domain.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, q := range c.texts[fileID] {
		delete(c.owner, q.ID)
	}
	c.texts[fileID] = quotes
	for _, q := range quotes {
		c.owner[q.ID] = fileID
	}
}

// Remove deletes a text's quotes. Removing an unknown id is a no-op.
func (c *Catalog) Remove(fileID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, q := range c.texts[fileID] {
		delete(c.owner, q.ID)
	}
	delete(c.texts, fileID)
}

// OwnerOf returns the file id a quote was registered under. Fallback-corpus
// quotes have no owner.
func (c *Catalog) OwnerOf(quoteID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fileID, ok := c.owner[quoteID]
	return fileID, ok
}

// Has reports whether a text is registered.
func (c *Catalog) Has(fileID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.texts[fileID]
	return ok
}

// PoolFor resolves the quote pool for a focus state. File mode returns that
// text's quotes; all mode returns every registered quote. When nothing is
// registered (or the file is unknown) the built-in fallback corpus serves.
func (c *Catalog) PoolFor(focus domain.FocusState) []domain.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if focus.Mode == domain.FocusModeFile {
		if quotes, ok := c.texts[focus.FileID]; ok && len(quotes) > 0 {
			return quotes
		}
		return c.fallback
	}

	var pool []domain.Quote
	for _, quotes := range c.texts {
		pool = append(pool, quotes...)
	}
	if len(pool) == 0 {
		return c.fallback
	}
	return pool
}

func packsToQuotes(packs []Pack) []domain.Quote {
	var quotes []domain.Quote
	for _, pack := range packs {
		for i, text := range pack.Quotes {
			quotes = append(quotes, domain.Quote{
				ID:          uuid.NewString(),
				Text:        text,
				SourceLabel: pack.Source,
				Index:       i,
				Length:      len(text),
			})
		}
	}
	return quotes
}
