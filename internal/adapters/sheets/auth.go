package sheets

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize reads the OAuth client credentials and returns a token source
// backed by the cached token file. Without a cached token it runs the
// loopback consent flow once and caches the result.
func (p *Provider) authorize(ctx context.Context, src domain.SheetSource) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(src.CredentialsPath)
	if err != nil {
		return nil, errors.Join(domain.ErrAuthFailed,
			zerr.With(zerr.Wrap(err, "failed to read OAuth credentials"), "path", src.CredentialsPath))
	}

	cfg, err := google.ConfigFromJSON(data, ReadOnlyScope)
	if err != nil {
		return nil, errors.Join(domain.ErrAuthFailed,
			zerr.With(zerr.Wrap(err, "invalid OAuth credentials"), "path", src.CredentialsPath))
	}

	tok, err := loadToken(src.TokenPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		tok, err = p.consent(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := saveToken(src.TokenPath, tok); err != nil {
			p.logger.Warn("could not cache OAuth token: " + err.Error())
		}
	default:
		p.logger.Warn("ignoring unreadable OAuth token cache: " + err.Error())
		tok, err = p.consent(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	return &cachingTokenSource{
		base:   oauth2.ReuseTokenSource(tok, cfg.TokenSource(ctx, tok)),
		path:   src.TokenPath,
		last:   tok.AccessToken,
		logger: p.logger,
	}, nil
}

// consent runs the installed-app flow against a loopback redirect.
func (p *Provider) consent(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Join(domain.ErrAuthFailed, zerr.Wrap(err, "failed to open loopback listener"))
	}

	state, err := randomState()
	if err != nil {
		_ = ln.Close()
		return nil, errors.Join(domain.ErrAuthFailed, zerr.Wrap(err, "failed to generate state"))
	}
	verifier := oauth2.GenerateVerifier()

	flow := *cfg
	flow.RedirectURL = "http://" + ln.Addr().String() + "/"

	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)
	deliver := func(r result) {
		select {
		case results <- r:
		default:
		}
	}

	srv := &http.Server{
		ReadHeaderTimeout: 10 * time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				return
			}
			if reason := q.Get("error"); reason != "" {
				http.Error(w, "authorization denied", http.StatusForbidden)
				deliver(result{err: zerr.With(zerr.New("authorization denied"), "reason", reason)})
				return
			}
			_, _ = w.Write([]byte("Authorization complete. You may close this window.\n"))
			deliver(result{code: q.Get("code")})
		}),
	}
	go func() { _ = srv.Serve(ln) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := flow.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	p.logger.Info("open this URL in a browser to authorize spreadsheet access: " + authURL)

	var res result
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, errors.Join(domain.ErrAuthFailed, zerr.Wrap(ctx.Err(), "authorization interrupted"))
	}
	if res.err != nil {
		return nil, errors.Join(domain.ErrAuthFailed, res.err)
	}

	tok, err := flow.Exchange(ctx, res.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, errors.Join(domain.ErrAuthFailed, zerr.Wrap(err, "failed to exchange authorization code"))
	}
	return tok, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
