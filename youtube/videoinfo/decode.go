package videoinfo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/ytget/ytinfo/errs"
)

// Field names of the metadata blob.
const (
	FieldToken     = "token"
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldThumbnail = "thumbnail_url"
	FieldKeywords  = "keywords"
	FieldDuration  = "length_seconds"
	FieldRating    = "avg_rating"
	FieldItag      = "itag"
)

// Sentinels for numeric fields that are absent or unparsable.
const (
	UnknownDuration = -1
	UnknownRating   = -1.0
)

// Metadata is the decoded blob: field name to its non-empty values in appearance order.
type Metadata struct {
	values map[string][]string
	order  []string
}

// Decode parses a metadata blob. The whole body is percent-decoded once, then split
// into & separated key=value pairs whose values are unescaped with query semantics.
// Blank values and pairs without a key are dropped. Decode never fails.
func Decode(body []byte) *Metadata {
	m := &Metadata{values: make(map[string][]string)}

	for _, pair := range strings.Split(unescape(string(body), false), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key, true)
		value = unescape(value, true)
		if key == "" || value == "" {
			continue
		}
		if _, seen := m.values[key]; !seen {
			m.order = append(m.order, key)
		}
		m.values[key] = append(m.values[key], value)
	}

	return m
}

// Has reports whether field is present.
func (m *Metadata) Has(field string) bool {
	_, ok := m.values[field]
	return ok
}

// Get returns the first value of field, or a *errs.FieldError when it is absent.
func (m *Metadata) Get(field string) (string, error) {
	values, ok := m.values[field]
	if !ok {
		return "", &errs.FieldError{Field: field}
	}
	return values[0], nil
}

// Values returns a copy of every value of field.
func (m *Metadata) Values(field string) []string {
	return append([]string(nil), m.values[field]...)
}

// Fields returns the decoded field names in first-appearance order.
func (m *Metadata) Fields() []string {
	return append([]string(nil), m.order...)
}

func (m *Metadata) optional(field string) string {
	v, _ := m.Get(field)
	return v
}

// Token returns the access token, the only field required for resolution.
func (m *Metadata) Token() (string, error) {
	return m.Get(FieldToken)
}

// Title returns the site title and whether it was present.
func (m *Metadata) Title() (string, bool) {
	v, err := m.Get(FieldTitle)
	return v, err == nil
}

// Author returns the uploader name or "".
func (m *Metadata) Author() string {
	return m.optional(FieldAuthor)
}

// Thumbnail returns the thumbnail URL or "".
func (m *Metadata) Thumbnail() string {
	return m.optional(FieldThumbnail)
}

// Keywords returns the distinct comma separated keywords, trimmed and sorted.
func (m *Metadata) Keywords() []string {
	var keywords []string
	for _, raw := range m.values[FieldKeywords] {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	keywords = lo.Uniq(keywords)
	sort.Strings(keywords)
	return keywords
}

// Duration returns the length in seconds, or UnknownDuration.
func (m *Metadata) Duration() int {
	v, err := m.Get(FieldDuration)
	if err != nil {
		return UnknownDuration
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return UnknownDuration
	}
	return n
}

// Rating returns the average rating, or UnknownRating.
func (m *Metadata) Rating() float64 {
	v, err := m.Get(FieldRating)
	if err != nil {
		return UnknownRating
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return UnknownRating
	}
	return f
}

// Itags returns the raw per-encoding entries.
func (m *Metadata) Itags() []string {
	return m.Values(FieldItag)
}

// unescape decodes %XX sequences. Malformed escapes are kept verbatim.
// With plusSpace, '+' decodes to a space as in query strings.
func unescape(s string, plusSpace bool) string {
	if !strings.ContainsRune(s, '%') && (!plusSpace || !strings.ContainsRune(s, '+')) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case c == '+' && plusSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
