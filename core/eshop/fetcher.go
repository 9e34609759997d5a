package eshop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"go.uber.org/zap"
)

// HTTPClient executes HTTP requests. *http.Client implements it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads product pages.
type Fetcher struct {
	client   HTTPClient
	currency string
	logger   *zap.Logger
}

// NewFetcher creates a Fetcher that requests prices in currency.
func NewFetcher(client HTTPClient, currency string, logger *zap.Logger) *Fetcher {
	return &Fetcher{client: client, currency: currency, logger: logger}
}

// ValidateURL requires an absolute URL with scheme and host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}
	return nil
}

// FetchPage returns the body of a page.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "CURRENCY_CODE", Value: f.currency})

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{URL: pageURL, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: failed to read body: %w", pageURL, err)
	}
	f.logger.Debug("Page fetched", zap.String("url", pageURL), zap.Int("bytes", len(body)))
	return body, nil
}

// FetchProduct fetches a product page and parses its embedded payload.
func (f *Fetcher) FetchProduct(ctx context.Context, pageURL string) (*Product, error) {
	page, err := f.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	payload, err := ExtractNextData(page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pageURL, err)
	}
	product, err := ParseProduct(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pageURL, err)
	}
	return product, nil
}

var englishProductURL = regexp.MustCompile(`^https?://[^/]+/product/`)

// ResolveEnglishURL returns the English address of a product page. Slugs
// differ between languages, so localized pages are fetched to read it.
func (f *Fetcher) ResolveEnglishURL(ctx context.Context, pageURL string) (string, error) {
	if englishProductURL.MatchString(pageURL) {
		return pageURL, nil
	}

	page, err := f.FetchPage(ctx, pageURL)
	if err != nil {
		return "", err
	}
	payload, err := ExtractNextData(page)
	if err != nil {
		return "", fmt.Errorf("%s: %w", pageURL, err)
	}
	raw, err := decodeProduct(payload)
	if err != nil {
		return "", fmt.Errorf("%s: %w", pageURL, err)
	}
	en, err := raw.englishURL()
	if err != nil {
		return "", fmt.Errorf("%s: %w", pageURL, err)
	}
	f.logger.Info("Resolved English URL", zap.String("url", pageURL), zap.String("english_url", en))
	return en, nil
}
