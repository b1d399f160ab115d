package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	sharedErrors "github.com/reshetovitsme/nepse-digest/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	// DefaultUserAgent is the minimal agent some sources require.
	DefaultUserAgent = "Mozilla/5.0"
	// DesktopUserAgent mimics a desktop Chrome.
	DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// PageRenderer returns the rendered HTML of a page.
// Implementations may be a plain HTTP fetch or a headless browser.
type PageRenderer interface {
	Render(ctx context.Context, pageURL string) (string, error)
}

// Client fetches pages over HTTP. Every source owns its own Client.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a new page client
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// UserAgent returns the User-Agent header sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Render implements PageRenderer with a static GET.
func (c *Client) Render(ctx context.Context, pageURL string) (string, error) {
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", oops.With("url", pageURL, "context", "failed to read response body").Wrap(err)
	}
	return string(data), nil
}

// Document fetches pageURL and parses it.
func (c *Client) Document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, oops.With("url", pageURL, "context", "failed to parse HTML").Wrap(err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, pageURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, oops.With("url", pageURL, "context", "request creation failed").Wrap(err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, oops.With("url", pageURL, "context", "request failed").Wrap(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, oops.With("url", pageURL, "status", resp.StatusCode).
			Wrap(fmt.Errorf("%w: %d", sharedErrors.ErrUnexpectedStatus, resp.StatusCode))
	}
	return resp.Body, nil
}

// ParseDocument parses rendered HTML.
func ParseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, oops.With("context", "failed to parse HTML").Wrap(err)
	}
	return doc, nil
}

// ResolveURL resolves href against base. Empty hrefs resolve to "".
func ResolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// Text returns the whitespace-normalized text of a selection.
func Text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// DocumentFetcher loads and parses a static page.
type DocumentFetcher interface {
	Document(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
