package ytinfo

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/ytget/ytinfo/errs"
	"github.com/ytget/ytinfo/internal/logger"
	"github.com/ytget/ytinfo/internal/sanitize"
	"github.com/ytget/ytinfo/types"
	"github.com/ytget/ytinfo/youtube/cipher"
	"github.com/ytget/ytinfo/youtube/formats"
	"github.com/ytget/ytinfo/youtube/videoinfo"
)

// Descriptor is one resolved video: its descriptive metadata, the catalog of
// offered encodings and the caller's format, filename and extension overrides.
//
// The exported fields are fixed at construction. Only DownloadURL and Resolve
// react to the Set* overrides. A Descriptor is not safe for concurrent use.
type Descriptor struct {
	ID        string
	Title     string
	Author    string
	Duration  int
	Thumbnail string
	Keywords  []string
	Rating    float64
	Token     string

	metadata   *videoinfo.Metadata
	catalog    *formats.Catalog
	table      *formats.Table
	decipherer *cipher.Decipherer
	log        *logger.ComponentLogger

	format   mo.Option[string]
	filename mo.Option[string]
	ext      mo.Option[string]

	resolvedFormat string
	resolvedExt    string
}

// Format returns the requested format, or the last auto-selected one, or "".
func (d *Descriptor) Format() string {
	if f, ok := d.format.Get(); ok {
		return f
	}
	return d.resolvedFormat
}

// SetFormat pins the encoding to resolve. A blank id restores automatic selection.
// Pinning a known encoding derives its extension right away.
func (d *Descriptor) SetFormat(id string) {
	d.format = option(id)
	d.presetExt()
}

// presetExt derives the extension of a pinned encoding the table describes.
// Unknown or absent pins wait for DownloadURL.
func (d *Descriptor) presetExt() {
	id, ok := d.format.Get()
	if !ok {
		return
	}
	if ext, known := d.table.Ext(id); known && ext != "" {
		d.resolvedExt = ext
	}
}

// Filename returns the output file name without extension: the override, else the title.
func (d *Descriptor) Filename() string {
	return d.filename.OrElse(d.Title)
}

// SetFilename overrides the output file name. A blank name restores the title.
func (d *Descriptor) SetFilename(name string) {
	d.filename = option(name)
}

// Ext returns the file extension: a caller override other than the default
// sentinel, else the extension derived by the last resolution, else the sentinel.
func (d *Descriptor) Ext() string {
	if ext, ok := d.ext.Get(); ok && ext != formats.DefaultExt {
		return ext
	}
	if d.resolvedExt != "" {
		return d.resolvedExt
	}
	return formats.DefaultExt
}

// SetExt overrides the extension. It is lower-cased and a leading dot is dropped.
// A blank value or the default sentinel lets resolution derive it from the encoding.
func (d *Descriptor) SetExt(ext string) {
	d.ext = extOption(ext)
}

// Formats returns every offered encoding identifier in ascending order.
func (d *Descriptor) Formats() []string {
	return d.catalog.IDs()
}

// FormatURL returns the catalog URL of id, which may be empty for unresolved entries.
func (d *Descriptor) FormatURL(id string) (string, bool) {
	return d.catalog.URL(id)
}

// Field returns the first raw metadata value of name.
func (d *Descriptor) Field(name string) (string, error) {
	return d.metadata.Get(name)
}

// DownloadURL resolves the media URL of the requested format, or of the best
// offered format when none is requested. Failures leave the descriptor usable.
func (d *Descriptor) DownloadURL() (string, error) {
	id, err := d.selectFormat()
	if err != nil {
		return "", err
	}
	d.resolvedFormat = id
	d.resolvedExt = d.deriveExt(id)

	url, _ := d.catalog.URL(id)
	if !d.catalog.Resolved(id) {
		d.log.Warn("Resolved format has no URL", map[string]interface{}{"itag": id})
		return "", fmt.Errorf("%w: format %q", errs.ErrUnresolvedURL, id)
	}

	if d.decipherer != nil {
		signed, err := d.decipherer.SignURL(url)
		if err != nil {
			return "", fmt.Errorf("format %q: %w", id, err)
		}
		url = signed
	}

	d.log.Debug("Resolved download URL", map[string]interface{}{
		"itag": id,
		"ext":  d.Ext(),
	})
	return url, nil
}

func (d *Descriptor) selectFormat() (string, error) {
	if id, ok := d.format.Get(); ok {
		if !d.catalog.Has(id) {
			return "", &errs.FormatError{Requested: id, Valid: d.catalog.IDs()}
		}
		return id, nil
	}
	return d.table.SelectBest(d.catalog)
}

// deriveExt returns the extension the table gives id. Caller overrides are
// applied by Ext, not stored here.
func (d *Descriptor) deriveExt(id string) string {
	ext, ok := d.table.Ext(id)
	if !ok || ext == "" {
		d.log.Warn("Unknown encoding, keeping default extension", map[string]interface{}{
			"itag": id,
			"ext":  formats.DefaultExt,
		})
		return formats.DefaultExt
	}
	return ext
}

// OutputPath returns the sanitized "filename.ext" for the current overrides.
func (d *Descriptor) OutputPath() string {
	return sanitize.ToSafeFilename(d.Filename(), d.Ext())
}

// Resolve resolves the download URL and returns it with the descriptive metadata.
func (d *Descriptor) Resolve() (types.Resolution, error) {
	url, err := d.DownloadURL()
	if err != nil {
		return types.Resolution{}, err
	}
	desc, _ := d.table.Describe(d.resolvedFormat)

	return types.Resolution{
		ID:                d.ID,
		Title:             d.Title,
		Author:            d.Author,
		Duration:          d.Duration,
		Thumbnail:         d.Thumbnail,
		Keywords:          append([]string(nil), d.Keywords...),
		Rating:            d.Rating,
		Format:            d.resolvedFormat,
		FormatDescription: desc,
		URL:               url,
		Filename:          d.Filename(),
		Ext:               d.Ext(),
		Formats:           d.Formats(),
	}, nil
}
