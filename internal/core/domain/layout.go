package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".issueboard"

	// SnapshotDirName is the name of the snapshot cache directory.
	SnapshotDirName = "snapshots"

	// DefaultConfigFile is the config file read when no path is given.
	DefaultConfigFile = "config.toml"

	// DefaultTokenFile is the default OAuth token cache file.
	DefaultTokenFile = "token.json"

	// DefaultDumpURL is the nation dump URL template. {date} is replaced by the dump date.
	DefaultDumpURL = "https://www.nationstates.net/archive/nations/{date}-nations-xml.gz"

	// DumpFileTemplate names a downloaded dump. {date} is replaced by the dump date.
	DumpFileTemplate = "{date}-nations-xml.gz"

	// DateLayout is the layout of dump date identifiers.
	DateLayout = "2006-01-02"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultSnapshotPath returns the default path of the snapshot cache.
// It joins .issueboard and snapshots.
func DefaultSnapshotPath() string {
	return filepath.Join(StateDirName, SnapshotDirName)
}
