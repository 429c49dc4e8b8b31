package formats

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytget/ytinfo/internal/logger"
)

func captureLog(t *testing.T) (*logger.ComponentLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	config := logger.DefaultConfig()
	config.Output = &buf
	return logger.New(config).WithComponent(logger.ComponentFormat), &buf
}

func TestParseCatalog_WellFormed(t *testing.T) {
	entries := []string{
		"22,url=http://host/a.mp4",
		"37,url=http://host/b.mp4",
		"18,url=http://host/c.mp4?x=1&y=2",
	}

	c := ParseCatalog(entries, DefaultTable(), nil)

	require.Equal(t, len(entries), c.Len())
	for _, id := range []string{"22", "37", "18"} {
		assert.True(t, c.Resolved(id), "itag %s should be resolved", id)
	}
	url, ok := c.URL("18")
	assert.True(t, ok)
	assert.Equal(t, "http://host/c.mp4?x=1&y=2", url)
	assert.Equal(t, []string{"18", "22", "37"}, c.IDs())
	assert.Equal(t, []string{"22", "37", "18"}, c.Order())
}

func TestParseCatalog_WellFormedCountProperty(t *testing.T) {
	for n := 0; n <= 20; n++ {
		entries := make([]string, 0, n)
		for i := 0; i < n; i++ {
			entries = append(entries, fmt.Sprintf("%d,url=http://host/%d.mp4", 1000+i, i))
		}

		c := ParseCatalog(entries, nil, nil)

		require.Equal(t, n, c.Len())
		for _, id := range c.IDs() {
			assert.True(t, c.Resolved(id))
		}
	}
}

func TestParseCatalog_BareEntry(t *testing.T) {
	log, buf := captureLog(t)

	c := ParseCatalog([]string{"99", "22,url=http://host/a.mp4"}, DefaultTable(), log)

	assert.True(t, c.Has("99"))
	url, ok := c.URL("99")
	assert.True(t, ok)
	assert.Empty(t, url)
	assert.True(t, c.Resolved("22"))
	assert.Contains(t, buf.String(), "Unknown encoding")
	assert.Contains(t, buf.String(), "itag=99")
}

func TestParseCatalog_MalformedBlock(t *testing.T) {
	log, buf := captureLog(t)

	c := ParseCatalog([]string{"22,garbage", "37,url=http://host/b.mp4"}, DefaultTable(), log)

	assert.True(t, c.Has("22"))
	assert.False(t, c.Resolved("22"))
	assert.True(t, c.Resolved("37"))
	assert.Contains(t, buf.String(), "Malformed itag entry")
	assert.NotContains(t, buf.String(), "Unknown encoding")
}

func TestParseCatalog_UnknownStillCataloged(t *testing.T) {
	c := ParseCatalog([]string{"137,url=http://host/dash.mp4"}, DefaultTable(), nil)

	url, ok := c.URL("137")
	assert.True(t, ok)
	assert.Equal(t, "http://host/dash.mp4", url)
}

func TestParseCatalog_Duplicates(t *testing.T) {
	c := ParseCatalog([]string{
		"22",
		"22,url=http://host/first.mp4",
		"22,url=http://host/second.mp4",
	}, DefaultTable(), nil)

	assert.Equal(t, 1, c.Len())
	url, _ := c.URL("22")
	assert.Equal(t, "http://host/first.mp4", url)
}

func TestParseCatalog_EmptyIdentifier(t *testing.T) {
	c := ParseCatalog([]string{",url=http://host/x.mp4", "  "}, DefaultTable(), nil)
	assert.Equal(t, 0, c.Len())
}

func TestParseCatalog_URLKeepsEquals(t *testing.T) {
	c := ParseCatalog([]string{"22,url=http://host/a.mp4?sig=ab==&x=1"}, DefaultTable(), nil)

	url, _ := c.URL("22")
	assert.Equal(t, "http://host/a.mp4?sig=ab==&x=1", url)
}
