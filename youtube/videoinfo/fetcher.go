package videoinfo

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/ytget/ytinfo/client"
	"github.com/ytget/ytinfo/errs"
	"github.com/ytget/ytinfo/internal/logger"
)

// DefaultEndpoint is the metadata endpoint queried with ?video_id=<id>.
const DefaultEndpoint = "https://www.youtube.com/get_video_info"

// Fetcher retrieves the raw metadata blob for a video identifier.
type Fetcher struct {
	client   *client.Client
	endpoint string
}

// NewFetcher creates a fetcher on top of c. A nil client uses client.New().
func NewFetcher(c *client.Client) *Fetcher {
	if c == nil {
		c = client.New()
	}
	return &Fetcher{client: c, endpoint: DefaultEndpoint}
}

// WithEndpoint overrides the metadata endpoint. Blank values are ignored.
func (f *Fetcher) WithEndpoint(base string) *Fetcher {
	if strings.TrimSpace(base) != "" {
		f.endpoint = strings.TrimSpace(base)
	}
	return f
}

// Endpoint returns the configured metadata endpoint.
func (f *Fetcher) Endpoint() string {
	return f.endpoint
}

// URL returns the request URL for id.
func (f *Fetcher) URL(id string) string {
	sep := "?"
	if strings.Contains(f.endpoint, "?") {
		sep = "&"
	}
	return f.endpoint + sep + "video_id=" + url.QueryEscape(id)
}

// Fetch performs one GET for id and returns the decompressed body.
// Transport failures and non-2xx statuses wrap errs.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidID
	}

	log := logger.WithComponent(logger.ComponentFetch)
	target := f.URL(id)

	header := http.Header{}
	header.Set("Accept", "*/*")
	header.Set("Accept-Language", "en-US,en;q=0.9")
	header.Set("Accept-Encoding", "gzip, br")

	resp, err := f.client.Get(ctx, target, header)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", errs.ErrFetchFailed, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !client.IsSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d", errs.ErrFetchFailed, target, resp.StatusCode)
	}

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFetchFailed, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", errs.ErrFetchFailed, err)
	}

	log.Debug("Fetched metadata", map[string]interface{}{
		"video_id": id,
		"bytes":    len(body),
		"encoding": resp.Header.Get("Content-Encoding"),
	})
	return body, nil
}

func decodeBody(resp *http.Response) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %v", err)
		}
		return gz, nil
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "bzip2":
		return bzip2.NewReader(resp.Body), nil
	default:
		return resp.Body, nil
	}
}
