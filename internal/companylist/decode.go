package companylist

import (
	"encoding/json"
	"fmt"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

// decodeNames accepts a bare list or an object with a "companies" list. List
// items are either strings or objects carrying a "name" field.
func decodeNames(data []byte, format string) ([]string, error) {
	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse company list JSON")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse company list YAML")
		}
	default:
		return nil, errorwrapper.NewConfigurationError("company_list_config", "format", fmt.Sprintf("unsupported format %q", format))
	}

	items, err := companyItems(doc)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			names = append(names, v)
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func companyItems(doc any) ([]any, error) {
	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if items, ok := v["companies"].([]any); ok {
			return items, nil
		}
		return nil, errorwrapper.NewValidationError("companies", nil, "company list object must contain a companies list")
	case nil:
		return nil, nil
	}
	return nil, errorwrapper.NewValidationError("companies", fmt.Sprintf("%T", doc), "company list must be a list or an object with a companies list")
}
