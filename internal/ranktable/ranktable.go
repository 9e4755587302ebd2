// Package ranktable implements the process-wide, lazily-loaded
// hand-ranking table cache spec §6 describes: "CSV files keyed by
// (evaluation_type) mapping canonical hand strings or (rank,
// ordered_rank) pairs to descriptions; the engine loads them lazily per
// evaluator." It also builds the minimal perfect hash (go-chd) over each
// loaded table so a canonical-string lookup is O(1) without a Go map's
// per-entry overhead, generalizing the teacher's evaluator package split
// between evaluate7Basic and its perfect-hash-backed Evaluate7Compressed.
//
// Concurrency: table loads are deduplicated with sync.Once per type and
// multiple types can be warmed concurrently with errgroup (see
// WarmAll), matching spec §5's "no shared-mutable globals other than
// the random source" - the cache itself is populated exactly once and
// is immutable thereafter, safe for concurrent game instances to share.
package ranktable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/opencoff/go-chd"
	"golang.org/x/sync/errgroup"
)

// Row is one entry of a loaded rank table: a canonical hand string (the
// cards sorted into the evaluation type's canonical rank/suit order) and
// the description text associated with it.
type Row struct {
	Key         string
	Description string
}

// Table is an immutable, perfect-hash-indexed rank table for one
// evaluation type.
type Table struct {
	rows  []Row
	index map[string]int // fallback index; chd accelerates the common path
	ph    *chd.CHD
}

// Describe looks a canonical key up in the table.
func (t *Table) Describe(key string) (string, bool) {
	if t.ph != nil {
		i := int(t.ph.Find([]byte(key)))
		if i >= 0 && i < len(t.rows) && t.rows[i].Key == key {
			return t.rows[i].Description, true
		}
	}
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.rows[i].Description, true
}

// Len reports how many rows the table holds.
func (t *Table) Len() int { return len(t.rows) }

// Parse reads a CSV rank table of the form "key,description" (one per
// line, blank lines and '#' comments ignored) and builds a perfect hash
// over the keys when there are enough rows to make it worthwhile.
func Parse(r io.Reader) (*Table, error) {
	var rows []Row
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("ranktable: malformed row %q", line)
		}
		rows = append(rows, Row{Key: strings.TrimSpace(parts[0]), Description: strings.TrimSpace(parts[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	t := &Table{rows: rows, index: make(map[string]int, len(rows))}
	for i, row := range rows {
		t.index[row.Key] = i
	}

	if len(rows) >= 8 {
		keys := make([][]byte, len(rows))
		for i, row := range rows {
			keys[i] = []byte(row.Key)
		}
		cfg := &chd.Config{}
		ph, err := chd.New(cfg, keys)
		if err == nil {
			t.ph = ph
		}
		// A CHD construction failure (e.g. pathological key set) is not
		// fatal: Describe falls back to the plain map index above.
	}
	return t, nil
}

// Source supplies the raw CSV bytes for an evaluation type, e.g. reading
// an embedded or on-disk file. Kept as an interface so callers can wire
// embed.FS, os.Open, or a test fixture interchangeably.
type Source func(evalType string) (io.Reader, error)

// Cache is the process-wide lazily-loaded table cache.
type Cache struct {
	source Source
	mu     sync.Mutex
	once   map[string]*sync.Once
	tables map[string]*Table
	errs   map[string]error
}

// NewCache builds a cache backed by source. Cache is safe for concurrent
// use by multiple game instances (spec §5).
func NewCache(source Source) *Cache {
	return &Cache{
		source: source,
		once:   make(map[string]*sync.Once),
		tables: make(map[string]*Table),
		errs:   make(map[string]error),
	}
}

// Get returns the table for evalType, loading and caching it on first
// use. Concurrent callers for the same evalType block on one load.
func (c *Cache) Get(evalType string) (*Table, error) {
	c.mu.Lock()
	once, ok := c.once[evalType]
	if !ok {
		once = &sync.Once{}
		c.once[evalType] = once
	}
	c.mu.Unlock()

	once.Do(func() {
		r, err := c.source(evalType)
		if err != nil {
			c.mu.Lock()
			c.errs[evalType] = err
			c.mu.Unlock()
			return
		}
		t, err := Parse(r)
		c.mu.Lock()
		if err != nil {
			c.errs[evalType] = err
		} else {
			c.tables[evalType] = t
		}
		c.mu.Unlock()
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.errs[evalType]; ok {
		return nil, err
	}
	return c.tables[evalType], nil
}

// WarmAll loads every evalType concurrently via errgroup, surfacing the
// first error encountered. Hosts that want predictable latency on the
// first hand (rather than paying load cost on the first lookup) call
// this at startup.
func (c *Cache) WarmAll(evalTypes []string) error {
	var g errgroup.Group
	for _, t := range evalTypes {
		t := t
		g.Go(func() error {
			_, err := c.Get(t)
			return err
		})
	}
	return g.Wait()
}

// ParseCrossSize reads a cross-size mapping CSV of the form
// "smallerEval,rank,orderedRank,largerEval,rank,orderedRank" (spec §6:
// "The cross-size mapping is also a CSV keyed by (smaller_eval, rank,
// ordered_rank) -> (larger_eval, rank, ordered_rank)").
func ParseCrossSize(r io.Reader) (map[CrossKey]CrossTarget, error) {
	out := make(map[CrossKey]CrossTarget)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 6 {
			return nil, fmt.Errorf("ranktable: malformed cross-size row %q", line)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		ordered, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, err
		}
		tRank, err := strconv.Atoi(strings.TrimSpace(parts[4]))
		if err != nil {
			return nil, err
		}
		tOrdered, err := strconv.Atoi(strings.TrimSpace(parts[5]))
		if err != nil {
			return nil, err
		}
		key := CrossKey{Eval: strings.TrimSpace(parts[0]), CategoryRank: rank, OrderedRank: ordered}
		out[key] = CrossTarget{
			Eval:         strings.TrimSpace(parts[3]),
			CategoryRank: tRank,
			OrderedRank:  tOrdered,
		}
	}
	return out, scanner.Err()
}

// CrossKey identifies a (smaller evaluation, rank) row in a cross-size
// mapping table.
type CrossKey struct {
	Eval         string
	CategoryRank int
	OrderedRank  int
}

// CrossTarget is the equivalent larger-size rank a CrossKey maps to.
type CrossTarget struct {
	Eval         string
	CategoryRank int
	OrderedRank  int
}
