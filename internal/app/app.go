// Package app implements the application layer for issueboard.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/issueboard/internal/engine/aggregate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	provider     ports.WatchListProvider
	fetcher      ports.DumpFetcher
	scanner      ports.DumpScanner
	store        ports.SnapshotStore
	exporter     ports.Exporter
	telemetry    ports.Telemetry
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	provider ports.WatchListProvider,
	fetcher ports.DumpFetcher,
	scanner ports.DumpScanner,
	store ports.SnapshotStore,
	exporter ports.Exporter,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		provider:     provider,
		fetcher:      fetcher,
		scanner:      scanner,
		store:        store,
		exporter:     exporter,
		telemetry:    telemetry,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to stamp snapshots.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunOptions configuration for the Run method.
// Non-empty fields override the config file.
type RunOptions struct {
	ConfigPath string
	Start      string
	End        string
	Output     string
	NoCache    bool
}

// snapshotResult is the outcome of collecting one date.
type snapshotResult struct {
	counts domain.SnapshotCounts
	// path is the dump that was fetched, empty when the cache answered.
	path string
}

// Run builds the leaderboard for the configured window and exports it.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	// 1. Load the configuration
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	// 2. Fetch the watch-list
	_, vertex := a.telemetry.Record(ctx, "watch-list")
	wl, err := a.provider.WatchList(ctx, cfg.Spreadsheet)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to load watch-list")
	}
	if wl.Len() == 0 {
		return domain.ErrEmptyWatchList
	}
	names := wl.Names()

	// 3. Collect both snapshots concurrently
	dates := []string{cfg.General.StartDate}
	if cfg.General.EndDate != cfg.General.StartDate {
		dates = append(dates, cfg.General.EndDate)
	}
	results := make([]snapshotResult, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	for i, date := range dates {
		g.Go(func() error {
			res, err := a.collect(gctx, cfg.General.DumpSource(), date, names, opts.NoCache)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to collect snapshot"), "date", date)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrPipelineFailed, err)
	}

	before, after := results[0].counts, results[len(results)-1].counts

	// 4. Aggregate
	_, vertex = a.telemetry.Record(ctx, "aggregate")
	board := aggregate.Aggregate(wl, before, after)
	vertex.Complete(nil)

	// 5. Export
	_, vertex = a.telemetry.Record(ctx, "export")
	err = a.exporter.Export(board, cfg.Export.Path)
	vertex.Complete(err)
	if err != nil {
		return errors.Join(domain.ErrPipelineFailed, zerr.Wrap(err, "failed to export leaderboard"))
	}
	a.logger.Info(fmt.Sprintf("wrote leaderboard of %d owners to %s", len(board), cfg.Export.Path))

	// 6. Optionally drop the downloaded dumps
	if cfg.General.DeleteDumps {
		for _, res := range results {
			if res.path == "" {
				continue
			}
			if err := a.fetcher.Remove(res.path); err != nil {
				a.logger.Warn("failed to delete dump: " + err.Error())
			}
		}
	}

	return nil
}

func (a *App) loadConfig(opts RunOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Start != "" {
		cfg.General.StartDate = opts.Start
	}
	if opts.End != "" {
		cfg.General.EndDate = opts.End
	}
	if opts.Output != "" {
		cfg.Export.Path = opts.Output
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid configuration"), "path", path)
	}
	return cfg, nil
}

// collect produces the counts for one date, from the cache when possible.
func (a *App) collect(
	ctx context.Context,
	src domain.DumpSource,
	date string,
	names domain.NameSet,
	noCache bool,
) (snapshotResult, error) {
	source := src.URL(date)
	key := domain.SnapshotKey(source, date, names)

	if !noCache {
		if counts, ok := a.cached(key, source, date, names); ok {
			_, vertex := a.telemetry.Record(ctx, "scan "+date)
			vertex.Cached()
			vertex.Complete(nil)
			return snapshotResult{counts: counts}, nil
		}
	}

	_, vertex := a.telemetry.Record(ctx, "fetch "+date)
	path, err := a.fetcher.Fetch(ctx, src, date)
	vertex.Complete(err)
	if err != nil {
		return snapshotResult{}, err
	}

	_, vertex = a.telemetry.Record(ctx, "scan "+date)
	counts, err := a.scanFile(ctx, path, names)
	vertex.Complete(err)
	if err != nil {
		return snapshotResult{}, err
	}

	if !noCache {
		snap := domain.Snapshot{
			Date:        date,
			Source:      source,
			Fingerprint: names.Fingerprint(),
			Counts:      counts,
			ScannedAt:   a.now().UTC(),
		}
		if err := a.store.Put(key, snap); err != nil {
			a.logger.Warn("failed to cache snapshot: " + err.Error())
		}
	}

	return snapshotResult{counts: counts, path: path}, nil
}

// cached returns stored counts for key if they were taken from the same dump for the same names.
func (a *App) cached(key, source, date string, names domain.NameSet) (domain.SnapshotCounts, bool) {
	snap, err := a.store.Get(key)
	if err != nil {
		a.logger.Warn("ignoring unreadable snapshot cache: " + err.Error())
		return nil, false
	}
	if snap == nil || snap.Date != date || snap.Source != source || snap.Fingerprint != names.Fingerprint() {
		return nil, false
	}
	if snap.Counts == nil {
		return domain.SnapshotCounts{}, true
	}
	return snap.Counts, true
}

func (a *App) scanFile(ctx context.Context, path string, names domain.NameSet) (domain.SnapshotCounts, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the fetcher or the user
	if err != nil {
		return nil, errors.Join(domain.ErrDumpUnreadable, zerr.With(zerr.Wrap(err, "failed to open dump"), "path", path))
	}
	defer func() { _ = f.Close() }()

	counts, err := a.scanner.ScanArchive(ctx, f, names)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return counts, nil
}

// ScanResult is the counter found for one requested name.
type ScanResult struct {
	Name  domain.CanonicalName
	Count int64
	Found bool
}

// Scan reads a local dump and reports the counters of the given names, in input order.
// Repeated names are reported once.
func (a *App) Scan(ctx context.Context, path string, rawNames []string) ([]ScanResult, error) {
	var order []domain.CanonicalName
	names := make(domain.NameSet, len(rawNames))
	for _, raw := range rawNames {
		n := domain.Canonical(raw)
		if names.Contains(n) {
			continue
		}
		names[n] = struct{}{}
		order = append(order, n)
	}

	counts, err := a.scanFile(ctx, path, names)
	if err != nil {
		return nil, err
	}

	results := make([]ScanResult, len(order))
	for i, n := range order {
		count, ok := counts[n]
		results[i] = ScanResult{Name: n, Count: count, Found: ok}
	}
	return results, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Cache      bool
	Dumps      bool
	ConfigPath string
}

// Clean removes the snapshot cache and downloaded dumps based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	if options.Cache {
		a.logger.Info("removing snapshot cache...")
		if err := os.RemoveAll(domain.DefaultSnapshotPath()); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to remove snapshot cache"))
		} else {
			a.logger.Info("removed snapshot cache")
		}
	}

	if options.Dumps {
		path := options.ConfigPath
		if path == "" {
			path = domain.DefaultConfigFile
		}
		cfg, err := a.configLoader.Load(path)
		if err != nil {
			return errors.Join(errs, zerr.Wrap(err, "failed to load configuration"))
		}
		if err := cfg.Validate(); err != nil {
			return errors.Join(errs, zerr.With(zerr.Wrap(err, "invalid configuration"), "path", path))
		}
		src := cfg.General.DumpSource()
		dates := []string{cfg.General.StartDate}
		if cfg.General.EndDate != cfg.General.StartDate {
			dates = append(dates, cfg.General.EndDate)
		}
		for _, date := range dates {
			dump := src.Path(date)
			if err := a.fetcher.Remove(dump); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			a.logger.Info("removed " + dump)
		}
	}

	return errs
}
