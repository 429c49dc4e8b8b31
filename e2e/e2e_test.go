//go:build e2e

package e2e

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/ytget/ytinfo"
)

func TestE2E_Resolve(t *testing.T) {
	if os.Getenv("YTINFO_E2E") == "" {
		t.Skip("YTINFO_E2E not set")
	}
	id := os.Getenv("YTINFO_E2E_ID")
	if id == "" {
		id = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	}

	r := ytinfo.New()
	if endpoint := os.Getenv("YTINFO_E2E_ENDPOINT"); endpoint != "" {
		r = r.WithEndpoint(endpoint)
	}
	res, err := r.Resolve(context.Background(), id)
	if err != nil {
		t.Fatalf("e2e resolve failed: %v", err)
	}
	if res.URL == "" || res.Format == "" {
		t.Fatalf("Expected a resolved URL and format, got %+v", res)
	}
}

func TestE2E_Download(t *testing.T) {
	if os.Getenv("YTINFO_E2E_DOWNLOAD") == "" {
		t.Skip("YTINFO_E2E_DOWNLOAD not set")
	}
	id := os.Getenv("YTINFO_E2E_ID")
	if id == "" {
		id = "dQw4w9WgXcQ"
	}

	fs := afero.NewMemMapFs()
	r := ytinfo.New().WithFs(fs)
	ctx := context.Background()
	d, err := r.Describe(ctx, id)
	if err != nil {
		t.Fatalf("e2e describe failed: %v", err)
	}
	path, err := r.Download(ctx, d, "/out/")
	if err != nil {
		t.Fatalf("e2e download failed: %v", err)
	}
	info, err := fs.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("Expected a non-empty file at %s, got %v", path, err)
	}
}
