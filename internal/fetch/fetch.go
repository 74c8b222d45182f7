// Package fetch reads source images for the command line: local files,
// standard input, or http(s) URLs.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// StdinName is the reference that reads from standard input
const StdinName = "-"

// DefaultUserAgent is sent with remote requests unless overridden
const DefaultUserAgent = "imgsplit/1.0.0"

// ErrTooLarge is returned when a source exceeds the byte limit
var ErrTooLarge = errors.New("source exceeds size limit")

// HTTPError reports a remote source that did not answer 200 OK
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Status)
}

// Fetcher retrieves source image bytes
type Fetcher struct {
	client    *http.Client
	userAgent string
	headers   map[string]string
	limit     int64

	// Stdin is read for the "-" reference
	Stdin io.Reader
}

// New creates a fetcher. limit caps the bytes read from any source; zero
// or less disables the cap.
func New(userAgent string, timeout time.Duration, limit int64) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		limit:     limit,
		Stdin:     os.Stdin,
	}
}

// SetHeader adds a header sent with every remote request
func (f *Fetcher) SetHeader(key, value string) {
	if f.headers == nil {
		f.headers = make(map[string]string)
	}
	f.headers[key] = value
}

// IsRemote reports whether ref is fetched over HTTP
func IsRemote(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch returns the source name and its bytes. The name is what output
// archives are named after: the file name, the last URL path segment, or
// "stdin".
func (f *Fetcher) Fetch(ctx context.Context, ref string) (string, []byte, error) {
	switch {
	case ref == StdinName:
		data, err := f.readLimited(f.Stdin)
		return "stdin", data, err

	case IsRemote(ref):
		data, err := f.download(ctx, ref)
		return remoteName(ref), data, err

	default:
		file, err := os.Open(ref)
		if err != nil {
			return "", nil, err
		}
		defer file.Close()

		data, err := f.readLimited(file)
		return filepath.Base(ref), data, err
	}
}

// download performs a GET against a remote source
func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.userAgent)
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{URL: rawURL, StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	if f.limit > 0 && resp.ContentLength > f.limit {
		return nil, fmt.Errorf("%s: %w (%d > %d bytes)", rawURL, ErrTooLarge, resp.ContentLength, f.limit)
	}

	return f.readLimited(resp.Body)
}

func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	if f.limit <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, f.limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, f.limit)
	}
	return data, nil
}

func remoteName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "download"
	}
	name := path.Base(strings.TrimSuffix(u.Path, "/"))
	if name == "" || name == "." || name == "/" {
		return "download"
	}
	return name
}
