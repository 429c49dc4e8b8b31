package formats

import "github.com/ytget/ytinfo/errs"

// SelectBest returns the first priority entry cataloged with a non-empty URL.
// The result depends only on priority order, never on catalog order.
func SelectBest(c *Catalog, priority []string) (string, error) {
	if c != nil {
		for _, id := range priority {
			if c.Resolved(id) {
				return id, nil
			}
		}
	}
	return "", errs.ErrNoAcceptableFormat
}
