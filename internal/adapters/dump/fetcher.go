// Package dump downloads daily nation dumps to local disk.
package dump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

var _ ports.DumpFetcher = (*Fetcher)(nil)

// Config configures download behavior.
type Config struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// Backoff is the base delay, doubled on every retry.
	Backoff time.Duration
	// RateLimit is the number of requests per second.
	RateLimit float64
	RateBurst int
	Timeout   time.Duration
}

// DefaultConfig returns the download defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxRetries: 3,
		Backoff:    500 * time.Millisecond,
		RateLimit:  1,
		RateBurst:  1,
		Timeout:    10 * time.Minute,
	}
}

// Fetcher is a rate-limited, retrying dump downloader.
type Fetcher struct {
	config  *Config
	client  *http.Client
	limiter *rate.Limiter
	logger  ports.Logger
}

// NewFetcher creates a Fetcher. A nil config selects DefaultConfig.
func NewFetcher(logger ports.Logger, config *Config) *Fetcher {
	if config == nil {
		config = DefaultConfig()
	}
	return &Fetcher{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), config.RateBurst),
		logger:  logger,
	}
}

// statusError reports a non-200 response.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return "unexpected status " + e.status
}

// Fetch downloads the dump for date unless a copy already exists locally.
func (f *Fetcher) Fetch(ctx context.Context, src domain.DumpSource, date string) (string, error) {
	path := src.Path(date)

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		f.logger.Info("using existing dump " + path)
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return "", errors.Join(domain.ErrRetrievalFailed,
			zerr.With(zerr.Wrap(err, "failed to create dump directory"), "path", filepath.Dir(path)))
	}

	url := src.URL(date)
	f.logger.Info(fmt.Sprintf("downloading dump for %s", date))

	var lastErr error
	for attempt := 0; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * f.config.Backoff
			f.logger.Warn(fmt.Sprintf("retrying dump download for %s in %s: %v", date, backoff, lastErr))
			select {
			case <-ctx.Done():
				return "", f.fail(ctx.Err(), url, date)
			case <-time.After(backoff):
			}
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return "", f.fail(err, url, date)
		}

		lastErr = f.download(ctx, src.UserAgent, url, path)
		if lastErr == nil {
			return path, nil
		}
		if !isRetryable(ctx, lastErr) {
			break
		}
	}

	return "", f.fail(lastErr, url, date)
}

func (f *Fetcher) fail(err error, url, date string) error {
	detail := zerr.With(zerr.Wrap(err, "failed to download dump"), "url", url)
	detail = zerr.With(detail, "date", date)
	var se *statusError
	if errors.As(err, &se) {
		detail = zerr.With(detail, "status", se.code)
	}
	return errors.Join(domain.ErrRetrievalFailed, detail)
}

// download streams one response into a temp file and renames it into place.
func (f *Fetcher) download(ctx context.Context, userAgent, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &statusError{code: resp.StatusCode, status: resp.Status}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".dump-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}
	var pe *fs.PathError
	return !errors.As(err, &pe)
}

// Remove deletes a downloaded dump. A missing file is not an error.
func (f *Fetcher) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove dump"), "path", path)
	}
	return nil
}
