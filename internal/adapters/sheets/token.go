package sheets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/oauth2"
)

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "corrupt token file"), "path", path)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, zerr.With(zerr.New("token file holds no token"), "path", path)
	}
	return &tok, nil
}

// saveToken writes the token with owner-only permissions.
func saveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode token")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create token directory"), "path", dir)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".token-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp token file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write token")
	}
	if err := tmp.Chmod(domain.PrivateFilePerm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to restrict token permissions")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close token file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store token"), "path", path)
	}
	return nil
}

// cachingTokenSource persists every refreshed token so the next run can
// skip the consent flow.
type cachingTokenSource struct {
	base   oauth2.TokenSource
	path   string
	logger ports.Logger

	mu   sync.Mutex
	last string
}

func (c *cachingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := c.base.Token()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if tok.AccessToken != c.last {
		c.last = tok.AccessToken
		if err := saveToken(c.path, tok); err != nil {
			c.logger.Warn("could not cache refreshed OAuth token: " + err.Error())
		}
	}
	return tok, nil
}
