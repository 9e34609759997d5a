package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"inventree-sync/core/catalog"

	"go.uber.org/zap"
)

// ErrEmptyImage is returned when an image download has no content.
var ErrEmptyImage = errors.New("empty image")

// Image is a downloaded product image.
type Image struct {
	Data        []byte
	ContentType string
	// Extension includes the leading dot, or is empty for unknown types.
	Extension string
}

// Filename returns base with the image extension appended.
func (i *Image) Filename(base string) string {
	return base + i.Extension
}

var knownExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/avif":    ".avif",
}

// ExtensionFor maps a Content-Type header value to a file extension.
func ExtensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	mediaType = strings.ToLower(mediaType)
	if ext, ok := knownExtensions[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// HTTPClient executes HTTP requests. *http.Client implements it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader fetches images over HTTP.
type Downloader struct {
	client HTTPClient
}

// NewDownloader creates a Downloader.
func NewDownloader(client HTTPClient) *Downloader {
	return &Downloader{client: client}
}

// Download fetches an image. Non-2xx answers and empty bodies are errors.
func (d *Downloader) Download(ctx context.Context, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: failed to read body: %w", url, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("GET %s: %w", url, ErrEmptyImage)
	}

	contentType := resp.Header.Get("Content-Type")
	return &Image{Data: data, ContentType: contentType, Extension: ExtensionFor(contentType)}, nil
}

// Attach uploads img as the image of a part, named after base.
func Attach(ctx context.Context, gw catalog.PartRepository, logger *zap.Logger, partID int, base string, img *Image) error {
	filename := img.Filename(base)
	if err := gw.UploadPartImage(ctx, partID, filename, img.Data); err != nil {
		return fmt.Errorf("failed to upload image of part %d: %w", partID, err)
	}
	logger.Info("Part image uploaded", zap.Int("part_id", partID), zap.String("filename", filename), zap.Int("bytes", len(img.Data)))
	return nil
}
