package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/adeilh/metcat/museum"
)

var (
	ErrNoImage  = errors.New("ui: artwork has no image")
	ErrNoViewer = errors.New("ui: no image viewer available on this platform")
)

// ImageViewer downloads artwork images to a temporary directory and opens
// them with the platform's default viewer. Downloaded files live until
// Cleanup is called.
type ImageViewer struct {
	http *resty.Client

	mu    sync.Mutex
	dir   string
	files []string
}

// NewImageViewer returns a viewer with its own HTTP client. The image CDN is
// separate from the collection API, so the client carries no base URL.
func NewImageViewer() *ImageViewer {
	client := resty.New().
		SetTimeout(60 * time.Second).
		SetRetryCount(1)
	return &ImageViewer{http: client}
}

// Show downloads the artwork's primary image and opens it. The temp file is
// kept on disk so the external viewer can read it after Show returns.
func (v *ImageViewer) Show(ctx context.Context, artwork museum.Artwork) error {
	if !artwork.HasImage() {
		return ErrNoImage
	}

	path, err := v.download(ctx, artwork)
	if err != nil {
		return err
	}
	return openViewer(path)
}

func (v *ImageViewer) download(ctx context.Context, artwork museum.Artwork) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.dir == "" {
		dir, err := os.MkdirTemp("", "metcat-images-*")
		if err != nil {
			return "", fmt.Errorf("ui: create image dir: %w", err)
		}
		v.dir = dir
	}

	path := filepath.Join(v.dir, fmt.Sprintf("artwork-%d%s", artwork.ID, imageExt(artwork.ImageURL)))
	resp, err := v.http.R().
		SetContext(ctx).
		SetOutput(path).
		Get(artwork.ImageURL)
	if err != nil {
		return "", fmt.Errorf("ui: download image: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("ui: download image: status %d", resp.StatusCode())
	}
	v.files = append(v.files, path)
	return path, nil
}

// Cleanup removes every downloaded image and the temp directory.
func (v *ImageViewer) Cleanup() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, path := range v.files {
		os.Remove(path)
	}
	v.files = nil
	if v.dir != "" {
		os.RemoveAll(v.dir)
		v.dir = ""
	}
}

func imageExt(url string) string {
	if ext := filepath.Ext(url); ext != "" && len(ext) <= 5 {
		return ext
	}
	return ".jpg"
}

func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return ErrNoViewer
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ui: open image viewer: %w", err)
	}
	// The viewer keeps running on its own; reap it in the background so it
	// does not linger as a zombie.
	go cmd.Wait()
	return nil
}
