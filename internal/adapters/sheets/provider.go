// Package sheets reads the puppet watch-list from a Google spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// DefaultBaseURL is the Sheets API endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com"

// ReadOnlyScope is the only scope the provider asks for.
const ReadOnlyScope = sheetsapi.SpreadsheetsReadonlyScope

var _ ports.WatchListProvider = (*Provider)(nil)

// TokenSourceFunc produces an authorized token source for a spreadsheet source.
type TokenSourceFunc func(ctx context.Context, src domain.SheetSource) (oauth2.TokenSource, error)

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the Sheets API endpoint.
func WithBaseURL(base string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient sets the client used for API and token requests.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.httpClient = c }
}

// WithTokenSource replaces the credentials-file authorization.
func WithTokenSource(fn TokenSourceFunc) Option {
	return func(p *Provider) { p.tokens = fn }
}

// Provider implements ports.WatchListProvider on top of the Sheets v4 client.
type Provider struct {
	logger     ports.Logger
	baseURL    string
	httpClient *http.Client
	tokens     TokenSourceFunc
}

// New creates a Provider.
func New(logger ports.Logger, opts ...Option) *Provider {
	p := &Provider{
		logger:     logger,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tokens == nil {
		p.tokens = p.authorize
	}
	return p
}

// WatchList fetches the configured range and builds a watch-list from its rows.
// Rows that cannot be used are logged and skipped.
func (p *Provider) WatchList(ctx context.Context, src domain.SheetSource) (*domain.WatchList, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	ts, err := p.tokens(ctx, src)
	if err != nil {
		return nil, err
	}

	rows, err := p.fetch(ctx, oauth2.NewClient(ctx, ts), src)
	if err != nil {
		return nil, err
	}

	builder := domain.NewWatchListBuilder()
	for _, row := range rows {
		if err := builder.Add(row); err != nil {
			p.logger.Warn(describe(err))
		}
	}
	wl, _ := builder.Build()
	p.logger.Info(fmt.Sprintf("loaded %d puppets from spreadsheet", wl.Len()))

	return wl, nil
}

func (p *Provider) fetch(ctx context.Context, client *http.Client, src domain.SheetSource) ([][]string, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithHTTPClient(client),
		option.WithEndpoint(p.baseURL+"/"),
	)
	if err != nil {
		return nil, errors.Join(domain.ErrRetrievalFailed, zerr.Wrap(err, "failed to create spreadsheet client"))
	}

	vr, err := svc.Spreadsheets.Values.Get(src.SpreadsheetID, src.Range).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err)
	}

	rows := make([][]string, 0, len(vr.Values))
	for _, raw := range vr.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// classify maps a values.get failure onto the auth and retrieval sentinels.
func classify(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		return errors.Join(domain.ErrAuthFailed, zerr.Wrap(err, "failed to refresh access token"))
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return errors.Join(domain.ErrRetrievalFailed, zerr.Wrap(err, "failed to read spreadsheet values"))
	}

	detail := zerr.With(zerr.New(fmt.Sprintf("spreadsheet API returned %d", gerr.Code)), "status", gerr.Code)
	if msg := strings.TrimSpace(gerr.Message); msg != "" {
		detail = zerr.With(detail, "message", msg)
	} else if body := strings.TrimSpace(gerr.Body); body != "" {
		detail = zerr.With(detail, "body", body)
	}
	if gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden {
		return errors.Join(domain.ErrAuthFailed, detail)
	}
	return errors.Join(domain.ErrRetrievalFailed, detail)
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// describe flattens a rejected-row error into a single log line.
func describe(err error) string {
	var parts []string
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		parts = append(parts, e.Error())
	}
	walk(err)
	return "skipping spreadsheet row: " + strings.Join(parts, ": ")
}
