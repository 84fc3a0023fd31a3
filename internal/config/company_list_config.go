package config

// CompanyListConfig points at the read-only list of known legitimate companies.
// An empty Path uses the list embedded in the binary.
type CompanyListConfig struct {
	Path         string `json:"path,omitempty" yaml:"path,omitempty" validate:"omitempty,fileexists"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,listformat"`
	SQLiteTable  string `json:"sqlite_table,omitempty" yaml:"sqlite_table,omitempty" validate:"omitempty,sqlident"`
	SQLiteColumn string `json:"sqlite_column,omitempty" yaml:"sqlite_column,omitempty" validate:"omitempty,sqlident"`
}

// NewDefaultCompanyListConfig creates default company list configuration
func NewDefaultCompanyListConfig() CompanyListConfig {
	return CompanyListConfig{
		Format:       DefaultCompanyListFormat,
		SQLiteTable:  DefaultCompanyListSQLiteTable,
		SQLiteColumn: DefaultCompanyListSQLiteColumn,
	}
}
