package domain

import "go.trai.ch/zerr"

var (
	// ErrRetrievalFailed is returned when a dump or the watch-list cannot be downloaded.
	ErrRetrievalFailed = zerr.New("retrieval failed")

	// ErrAuthFailed is returned when spreadsheet credentials cannot be obtained or are rejected.
	ErrAuthFailed = zerr.New("authorization failed")

	// ErrMalformedRecord marks a dump record that cannot be read as expected.
	// The scanner skips such records instead of aborting.
	ErrMalformedRecord = zerr.New("malformed dump record")

	// ErrDumpUnreadable is returned when a dump stream cannot be opened, inflated or parsed.
	ErrDumpUnreadable = zerr.New("dump unreadable")

	// ErrMalformedRow is returned for a watch-list row that cannot be used.
	ErrMalformedRow = zerr.New("malformed watch-list row")

	// ErrEmptyWatchList is returned when the watch-list has no puppets.
	ErrEmptyWatchList = zerr.New("no puppets were found")

	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is missing or out of range.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnsupportedFormat is returned for config or export paths with an unknown extension.
	ErrUnsupportedFormat = zerr.New("unsupported file format")

	// ErrExportFailed is returned when the leaderboard cannot be written.
	ErrExportFailed = zerr.New("failed to export leaderboard")

	// ErrStoreCreateFailed is returned when the snapshot store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrStoreReadFailed is returned when a stored snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot")

	// ErrStoreUnmarshalFailed is returned when a stored snapshot cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot")

	// ErrStoreMarshalFailed is returned when a snapshot cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrStoreWriteFailed is returned when a snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot")

	// ErrPipelineFailed is returned when a leaderboard run does not complete.
	ErrPipelineFailed = zerr.New("leaderboard run failed")
)
