package config

// File represents the structure of the configuration file.
// The same schema is accepted as TOML or YAML.
type File struct {
	General     GeneralDTO     `toml:"general" yaml:"general"`
	Spreadsheet SpreadsheetDTO `toml:"puppet_spreadsheet" yaml:"puppet_spreadsheet"`
	Export      ExportDTO      `toml:"export" yaml:"export"`
}

// GeneralDTO represents the [general] section.
type GeneralDTO struct {
	StartDate   string `toml:"start_date" yaml:"start_date"`
	EndDate     string `toml:"end_date" yaml:"end_date"`
	DeleteDumps bool   `toml:"delete_dump_file_after_done" yaml:"delete_dump_file_after_done"`
	DumpDir     string `toml:"dump_dir" yaml:"dump_dir"`
	DumpURL     string `toml:"dump_url" yaml:"dump_url"`
	UserAgent   string `toml:"user_agent" yaml:"user_agent"`
}

// SpreadsheetDTO represents the [puppet_spreadsheet] section.
type SpreadsheetDTO struct {
	SpreadsheetID string `toml:"spreadsheet_id" yaml:"spreadsheet_id"`
	Range         string `toml:"range" yaml:"range"`
	CredPath      string `toml:"oauth_cred_path" yaml:"oauth_cred_path"`
	TokenPath     string `toml:"token_path" yaml:"token_path"`
}

// ExportDTO represents the [export] section.
type ExportDTO struct {
	JSONPath string `toml:"json_path" yaml:"json_path"`
}
