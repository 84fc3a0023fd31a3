package companylist

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/config"
)

// Supported list formats.
const (
	FormatAuto   = "auto"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

const maxListFileSize = 10 * 1024 * 1024

//go:embed data/legitimate_companies.json
var embeddedList []byte

// Source produces the raw company names.
type Source interface {
	Load(ctx context.Context) ([]string, error)
	Describe() string
}

// EmbeddedSource serves the list compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) ([]string, error) {
	return decodeNames(embeddedList, FormatJSON)
}

func (EmbeddedSource) Describe() string { return "embedded" }

// FileSource reads a JSON or YAML file.
type FileSource struct {
	Path   string
	Format string
}

func (s FileSource) Load(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to stat company list "+s.Path)
	}
	if info.Size() > maxListFileSize {
		return nil, errorwrapper.NewValidationError("path", s.Path, "company list file is too large")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read company list "+s.Path)
	}
	return decodeNames(data, s.Format)
}

func (s FileSource) Describe() string { return s.Format + ":" + s.Path }

// SourceFromConfig picks the source for cfg. An empty path means the embedded
// list; format "auto" is resolved from the file extension.
func SourceFromConfig(cfg config.CompanyListConfig) (Source, error) {
	if cfg.Path == "" {
		return EmbeddedSource{}, nil
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == FormatAuto {
		var err error
		if format, err = formatFromExtension(cfg.Path); err != nil {
			return nil, err
		}
	}

	switch format {
	case FormatJSON, FormatYAML:
		return FileSource{Path: cfg.Path, Format: format}, nil
	case FormatSQLite:
		return NewSQLiteSource(cfg.Path, cfg.SQLiteTable, cfg.SQLiteColumn)
	}
	return nil, errorwrapper.NewConfigurationError("company_list_config", "format", "unsupported format "+format)
}

func formatFromExtension(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", errorwrapper.NewConfigurationError("company_list_config", "format", "cannot infer format from "+path)
}
