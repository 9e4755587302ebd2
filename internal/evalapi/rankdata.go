package evalapi

import (
	"bytes"
	"embed"
	"io"
	"strconv"

	"github.com/lox/pokerengine/internal/ranktable"
)

// rankFiles embeds the CSV short-name tables spec §6 describes ("the
// engine loads them lazily per evaluator"). defaultRankCache is the
// process-wide cache (package ranktable) that perfect-hashes each table
// via go-chd once it is first requested.
//
//go:embed rankdata
var rankFiles embed.FS

var defaultRankCache = ranktable.NewCache(func(evalType string) (io.Reader, error) {
	data, err := rankFiles.ReadFile("rankdata/" + evalType + ".csv")
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
})

// categoryName resolves the short hand name for category within the
// named table family, preferring the perfect-hash-backed CSV table and
// falling back to the family's built-in Go map only if the table is
// missing the entry (it never should be, for the families shipped here).
func categoryName(family string, category int, fallback map[int]string) string {
	if tbl, err := defaultRankCache.Get(family); err == nil {
		if name, ok := tbl.Describe(strconv.Itoa(category)); ok {
			return name
		}
	}
	if name, ok := fallback[category]; ok {
		return name
	}
	return "Unknown Hand"
}
