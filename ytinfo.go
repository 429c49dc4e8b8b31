package ytinfo

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/ytget/ytinfo/client"
	"github.com/ytget/ytinfo/downloader"
	"github.com/ytget/ytinfo/errs"
	"github.com/ytget/ytinfo/internal/logger"
	"github.com/ytget/ytinfo/types"
	"github.com/ytget/ytinfo/youtube/cipher"
	"github.com/ytget/ytinfo/youtube/formats"
	"github.com/ytget/ytinfo/youtube/videoinfo"
)

// Progress describes current progress of an ongoing download.
type Progress = downloader.Progress

// ResolveOptions contains the configuration shared by every resolution.
//
// Use chainable setters on Resolver to populate these options.
type ResolveOptions struct {
	Format       mo.Option[string]
	Title        mo.Option[string]
	Filename     mo.Option[string]
	Ext          mo.Option[string]
	Endpoint     string
	Client       *client.Client
	Table        *formats.Table
	Decipherer   *cipher.Decipherer
	Fs           afero.Fs
	ProgressFunc func(Progress)
}

// Resolver turns video identifiers into Descriptors. It holds configuration
// only and may be reused; each Describe call builds an independent Descriptor.
type Resolver struct {
	options ResolveOptions
}

// New creates a new Resolver with default options: the built-in encoding table,
// automatic format selection and no signature deciphering.
func New() *Resolver {
	return &Resolver{}
}

func option(s string) mo.Option[string] {
	if s = strings.TrimSpace(s); s != "" {
		return mo.Some(s)
	}
	return mo.None[string]()
}

// extOption normalizes an extension override: lower case, no leading dot.
func extOption(ext string) mo.Option[string] {
	return option(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), "."))
}

// WithFormat pins the encoding identifier to resolve. Blank means automatic selection.
func (r *Resolver) WithFormat(id string) *Resolver {
	r.options.Format = option(id)
	return r
}

// WithTitle overrides the title reported by the site.
func (r *Resolver) WithTitle(title string) *Resolver {
	r.options.Title = option(title)
	return r
}

// WithFilename sets the output file name (without extension).
func (r *Resolver) WithFilename(name string) *Resolver {
	r.options.Filename = option(name)
	return r
}

// WithExt sets the output extension. Blank or the default sentinel derives it from the encoding.
func (r *Resolver) WithExt(ext string) *Resolver {
	r.options.Ext = extOption(ext)
	return r
}

// WithClient sets the HTTP client used for metadata and media requests.
func (r *Resolver) WithClient(c *client.Client) *Resolver {
	r.options.Client = c
	return r
}

// WithHTTPClient wraps a plain http.Client. Requests are attempted once.
func (r *Resolver) WithHTTPClient(hc *http.Client) *Resolver {
	if hc == nil {
		r.options.Client = nil
		return r
	}
	r.options.Client = &client.Client{HTTPClient: hc, MaxAttempts: 1}
	return r
}

// WithEndpoint overrides the metadata endpoint.
func (r *Resolver) WithEndpoint(endpoint string) *Resolver {
	r.options.Endpoint = strings.TrimSpace(endpoint)
	return r
}

// WithFormatTable replaces the built-in encoding table.
func (r *Resolver) WithFormatTable(t *formats.Table) *Resolver {
	r.options.Table = t
	return r
}

// WithDecipherer enables signature deciphering of resolved URLs.
func (r *Resolver) WithDecipherer(d *cipher.Decipherer) *Resolver {
	r.options.Decipherer = d
	return r
}

// WithFs sets the filesystem downloads are written to.
func (r *Resolver) WithFs(fs afero.Fs) *Resolver {
	r.options.Fs = fs
	return r
}

// WithProgress registers a callback that receives progress updates.
func (r *Resolver) WithProgress(f func(Progress)) *Resolver {
	r.options.ProgressFunc = f
	return r
}

func (r *Resolver) client() *client.Client {
	if r.options.Client != nil {
		return r.options.Client
	}
	return client.New()
}

func (r *Resolver) table() *formats.Table {
	if r.options.Table != nil {
		return r.options.Table
	}
	return formats.DefaultTable()
}

func (r *Resolver) fs() afero.Fs {
	if r.options.Fs != nil {
		return r.options.Fs
	}
	return afero.NewOsFs()
}

// Describe fetches and decodes the metadata of id and builds its Descriptor.
// id may be a bare identifier or a video URL. Construction is all or nothing:
// on error the returned Descriptor is nil.
func (r *Resolver) Describe(ctx context.Context, id string) (*Descriptor, error) {
	videoID, err := ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("describe %q: %w", id, err)
	}

	fields := map[string]interface{}{
		"resolution_id": uuid.NewString(),
		"video_id":      videoID,
	}
	log := logger.WithComponent(logger.ComponentApp).With(fields)
	formatLog := logger.WithComponent(logger.ComponentFormat).With(fields)

	log.Debug("Fetching metadata")
	body, err := videoinfo.NewFetcher(r.client()).WithEndpoint(r.options.Endpoint).Fetch(ctx, videoID)
	if err != nil {
		log.Error("Metadata fetch failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("describe %s: %w", videoID, err)
	}

	meta := videoinfo.Decode(body)
	token, err := meta.Token()
	if err != nil {
		log.Error("Metadata incomplete", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("describe %s: %w", videoID, err)
	}

	table := r.table()
	catalog := formats.ParseCatalog(meta.Itags(), table, formatLog)

	title, ok := meta.Title()
	if !ok {
		title = videoID
	}
	title = r.options.Title.OrElse(title)

	d := &Descriptor{
		ID:         videoID,
		Title:      title,
		Author:     meta.Author(),
		Duration:   meta.Duration(),
		Thumbnail:  meta.Thumbnail(),
		Keywords:   meta.Keywords(),
		Rating:     meta.Rating(),
		Token:      token,
		metadata:   meta,
		catalog:    catalog,
		table:      table,
		decipherer: r.options.Decipherer,
		log:        formatLog,
		format:     r.options.Format,
		filename:   r.options.Filename,
		ext:        r.options.Ext,
	}
	d.presetExt()

	if meta.Has(videoinfo.FieldDuration) && d.Duration == videoinfo.UnknownDuration {
		log.Warn("Unparsable duration", map[string]interface{}{"value": meta.Values(videoinfo.FieldDuration)[0]})
	}
	if meta.Has(videoinfo.FieldRating) && d.Rating == videoinfo.UnknownRating {
		log.Warn("Unparsable rating", map[string]interface{}{"value": meta.Values(videoinfo.FieldRating)[0]})
	}

	log.Info("Described video", map[string]interface{}{
		"title":   d.Title,
		"formats": catalog.Len(),
	})
	return d, nil
}

// Resolve describes id and resolves its download URL in one step.
func (r *Resolver) Resolve(ctx context.Context, id string) (types.Resolution, error) {
	d, err := r.Describe(ctx, id)
	if err != nil {
		return types.Resolution{}, err
	}
	return d.Resolve()
}

// Download resolves d and transfers the media. An empty outputPath uses d.OutputPath()
// in the working directory; an existing directory or a path ending in a separator
// receives d.OutputPath() inside it. The written path is returned.
func (r *Resolver) Download(ctx context.Context, d *Descriptor, outputPath string) (string, error) {
	if d == nil {
		return "", errs.ErrInvalidID
	}
	url, err := d.DownloadURL()
	if err != nil {
		return "", err
	}

	fs := r.fs()
	target := d.OutputPath()
	switch {
	case outputPath == "":
	case strings.HasSuffix(outputPath, "/") || strings.HasSuffix(outputPath, string(filepath.Separator)):
		target = filepath.Join(outputPath, target)
	default:
		if isDir, _ := afero.IsDir(fs, outputPath); isDir {
			target = filepath.Join(outputPath, target)
		} else {
			target = outputPath
		}
	}

	dl := downloader.New(r.client(), fs, r.options.ProgressFunc)
	if err := dl.Download(ctx, url, target); err != nil {
		return "", fmt.Errorf("download %s: %w", d.ID, err)
	}
	return target, nil
}
