package gdrive

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/m-mizutani/assetfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBaseURL is the public download endpoint. The file id is added as the "id" query parameter.
	DefaultBaseURL = "https://docs.google.com/uc?export=download"

	// DefaultChunkSize is the read size used while streaming the response body
	DefaultChunkSize = 32 * 1024
)

type client struct {
	baseURL    string
	httpClient *http.Client
	chunkSize  int
}

// Option is a functional option for the download client
type Option func(*client)

// WithBaseURL replaces the download endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client. The default client has no timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithChunkSize sets the read size used while streaming
func WithChunkSize(size int) Option {
	return func(c *client) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// NewClient creates a Downloader for the public file endpoint
func NewClient(opts ...Option) interfaces.Downloader {
	c := &client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		chunkSize:  DefaultChunkSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FileURL builds the download URL for id on top of baseURL
func FileURL(baseURL string, id types.FileID) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse base URL", goerr.V("base_url", baseURL))
	}

	q := u.Query()
	q.Set("id", id.String())
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Download streams the file addressed by id into dst, overwriting it
func (c *client) Download(ctx context.Context, id types.FileID, dst string) (written int64, err error) {
	logger := ctxlog.From(ctx)

	fileURL, err := FileURL(c.baseURL, id)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to build download URL", goerr.T(types.ErrTagNetwork), goerr.V("id", id))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create download request", goerr.T(types.ErrTagNetwork), goerr.V("id", id))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, goerr.Wrap(stripURL(err), "failed to connect to download endpoint", goerr.T(types.ErrTagNetwork), goerr.V("id", id))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, goerr.New("unexpected status code from download endpoint",
			goerr.T(types.ErrTagNetwork),
			goerr.V("id", id),
			goerr.V("status", resp.StatusCode),
		)
	}

	logger.Debug("Download response received",
		"id", id,
		"dst", dst,
		"content_length", resp.ContentLength,
	)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open archive file for writing", goerr.T(types.ErrTagIO), goerr.V("path", dst))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = goerr.Wrap(cerr, "failed to close archive file", goerr.T(types.ErrTagIO), goerr.V("path", dst))
		}
	}()

	buf := make([]byte, c.chunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				return written, goerr.Wrap(werr, "failed to write archive file", goerr.T(types.ErrTagIO), goerr.V("path", dst))
			}
			written += int64(n)
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, goerr.Wrap(rerr, "failed to read download stream",
				goerr.T(types.ErrTagNetwork),
				goerr.V("id", id),
				goerr.V("received_bytes", written),
			)
		}
	}

	logger.Debug("Download completed", "id", id, "dst", dst, "size_bytes", written)

	return written, nil
}

// stripURL drops the request URL from transport errors. The URL carries the
// file id in its query string and would otherwise reach the logs unredacted.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
