package formats

import (
	"sort"
	"strings"

	"github.com/ytget/ytinfo/internal/logger"
)

// Catalog maps each encoding identifier offered for one video to its source URL.
// The URL is empty when the itag entry could not be resolved. A Catalog is
// immutable once built.
type Catalog struct {
	urls  map[string]string
	order []string
}

// ParseCatalog builds a catalog from raw itag entries of the form "<id>,<param>=<url>"
// or a bare "<id>". Malformed entries and identifiers unknown to table are logged
// and still cataloged. When an identifier repeats, the first entry with a URL wins.
// ParseCatalog never fails.
func ParseCatalog(entries []string, table *Table, log *logger.ComponentLogger) *Catalog {
	c := &Catalog{urls: make(map[string]string, len(entries))}

	for _, entry := range entries {
		id, block, hasBlock := strings.Cut(entry, ",")
		id = normalizeID(id)
		if id == "" {
			log.Warn("Skipping itag entry without identifier", map[string]interface{}{"entry": entry})
			continue
		}

		var url string
		if hasBlock {
			if _, value, ok := strings.Cut(block, "="); ok {
				url = value
			} else {
				log.Warn("Malformed itag entry, URL left unresolved", map[string]interface{}{
					"itag":  id,
					"entry": entry,
				})
			}
		}

		if table != nil && !table.Known(id) {
			log.Warn("Unknown encoding", map[string]interface{}{
				"itag":          id,
				"table_version": table.Version,
			})
		}

		existing, seen := c.urls[id]
		switch {
		case !seen:
			c.order = append(c.order, id)
			c.urls[id] = url
		case !hasURL(existing) && hasURL(url):
			c.urls[id] = url
		}
	}

	log.Debug("Built format catalog", map[string]interface{}{
		"encodings": len(c.urls),
		"entries":   len(entries),
	})
	return c
}

// URL returns the source URL of id and whether id is cataloged.
func (c *Catalog) URL(id string) (string, bool) {
	url, ok := c.urls[id]
	return url, ok
}

// Has reports whether id is cataloged, resolved or not.
func (c *Catalog) Has(id string) bool {
	_, ok := c.urls[id]
	return ok
}

// Resolved reports whether id is cataloged with a non-empty URL.
func (c *Catalog) Resolved(id string) bool {
	return hasURL(c.urls[id])
}

// IDs returns the cataloged identifiers in ascending order.
func (c *Catalog) IDs() []string {
	ids := append([]string(nil), c.order...)
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })
	return ids
}

// Order returns the cataloged identifiers in the order they were first observed.
func (c *Catalog) Order() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of cataloged identifiers.
func (c *Catalog) Len() int {
	return len(c.urls)
}
