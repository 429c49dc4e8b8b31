// Package downloader transfers a resolved media URL to a file.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/ytget/ytinfo/client"
	"github.com/ytget/ytinfo/internal/logger"
)

const (
	temporaryFileSuffix = ".tmp"    // suffix for temp download
	copyBufferSizeBytes = 32 * 1024 // 32KB
	progressInterval    = 200 * time.Millisecond
)

// ErrEmptyDownload is returned when the server sends no bytes.
var ErrEmptyDownload = errors.New("empty download: 0 bytes written")

// Progress holds information about download progress.
// TotalSize is -1 when the server does not announce a length.
type Progress struct {
	TotalSize      int64
	DownloadedSize int64
	Percent        float64
	Done           bool
}

// Downloader streams one URL into a file with a single GET. It neither resumes
// nor splits the transfer.
type Downloader struct {
	Client       *client.Client
	Fs           afero.Fs
	ProgressFunc func(Progress)
}

// New creates a downloader. A nil client uses client.New(), a nil fs the OS filesystem.
func New(c *client.Client, fs afero.Fs, progressFunc func(Progress)) *Downloader {
	if c == nil {
		c = client.New()
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Downloader{Client: c, Fs: fs, ProgressFunc: progressFunc}
}

// Download fetches urlStr into outputPath. Data is written to outputPath.tmp and
// renamed once complete; the temporary file is removed on failure.
func (d *Downloader) Download(ctx context.Context, urlStr string, outputPath string) (err error) {
	log := logger.WithComponent(logger.ComponentDownloader).With(map[string]interface{}{"path": outputPath})
	log.Info("Starting download")

	header := http.Header{}
	header.Set("Accept", "*/*")
	header.Set("Accept-Encoding", "identity")

	resp, err := d.Client.Get(ctx, urlStr, header)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !client.IsSuccess(resp.StatusCode) {
		return fmt.Errorf("download request: HTTP status %d", resp.StatusCode)
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := d.Fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	tmpPath := outputPath + temporaryFileSuffix
	outFile, err := d.Fs.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = d.Fs.Remove(tmpPath)
		}
	}()

	total := resp.ContentLength
	if total < 0 {
		total = -1
	}
	pw := &progressWriter{total: total, report: d.ProgressFunc}

	written, copyErr := io.CopyBuffer(io.MultiWriter(outFile, pw), resp.Body, make([]byte, copyBufferSizeBytes))
	closeErr := outFile.Close()
	if copyErr != nil {
		return fmt.Errorf("write %s: %w", tmpPath, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", tmpPath, closeErr)
	}
	if written == 0 {
		return ErrEmptyDownload
	}
	pw.finish()

	if err := d.Fs.Rename(tmpPath, outputPath); err != nil {
		return fmt.Errorf("rename %s: %w", tmpPath, err)
	}

	log.Info("Download completed", map[string]interface{}{"bytes": written})
	return nil
}

// progressWriter counts bytes and reports at most once per progressInterval.
type progressWriter struct {
	total      int64
	downloaded int64
	last       time.Time
	report     func(Progress)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.downloaded += int64(len(b))
	if p.report != nil && time.Since(p.last) >= progressInterval {
		p.last = time.Now()
		p.report(p.progress(false))
	}
	return len(b), nil
}

func (p *progressWriter) finish() {
	if p.report != nil {
		p.report(p.progress(true))
	}
}

func (p *progressWriter) progress(done bool) Progress {
	pr := Progress{TotalSize: p.total, DownloadedSize: p.downloaded, Done: done}
	if p.total > 0 {
		pr.Percent = float64(p.downloaded) / float64(p.total) * 100
	}
	return pr
}
