package config

// SearchConfig configures the web search API used by company verification.
// Search is considered configured only when both APIKey and EngineID are set.
type SearchConfig struct {
	APIKey            string  `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	EngineID          string  `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`
	Endpoint          string  `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`
	ResultsPerQuery   int     `json:"results_per_query,omitempty" yaml:"results_per_query,omitempty" validate:"omitempty,min=1,max=10"`
	RequestsPerSecond float64 `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty" validate:"omitempty,gt=0"`
	Burst             int     `json:"burst,omitempty" yaml:"burst,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultSearchConfig creates default search configuration
func NewDefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Endpoint:          DefaultSearchEndpoint,
		ResultsPerQuery:   DefaultSearchResultsPerQuery,
		RequestsPerSecond: DefaultSearchRequestsPerSecond,
		Burst:             DefaultSearchBurst,
	}
}

// Enabled reports whether credentials for the search API are present.
func (c SearchConfig) Enabled() bool {
	return c.APIKey != "" && c.EngineID != ""
}
