package config

import "time"

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// HTTP client Defaults
	DefaultHTTPUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultHTTPTimeoutSecs     = 10
	DefaultHTTPMaxRedirects    = 10
	DefaultHTTPFollowRedirects = true
	DefaultHTTPEnableHTTP2     = true

	// Search Defaults
	DefaultSearchEndpoint          = "https://www.googleapis.com/customsearch/v1"
	DefaultSearchResultsPerQuery   = 5
	DefaultSearchRequestsPerSecond = 2.0
	DefaultSearchBurst             = 2

	// Sentiment Defaults
	DefaultSentimentEndpoint       = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"
	DefaultSentimentMaxInputChars  = 512
	DefaultSentimentBatchWorkers   = 4
	DefaultSentimentTimeoutSecs    = 10
	DefaultSentimentUseClassifier  = true
	DefaultCompanyListFormat       = "auto"
	DefaultCompanyListSQLiteTable  = "companies"
	DefaultCompanyListSQLiteColumn = "name"

	// Verifier Defaults
	DefaultVerifierCheckTimeoutSecs = 10

	// Environment variables
	EnvConfigPath        = "OFFERGUARD_CONFIG_PATH"
	EnvSearchAPIKey      = "GOOGLE_CSE_API_KEY"
	EnvSearchEngineID    = "GOOGLE_CSE_ENGINE_ID"
	EnvSearchEngineIDAlt = "GOOGLE_CSE_CX"
	EnvSentimentAPIKey   = "HUGGINGFACE_API_KEY"
)

// secondsToDuration converts a positive seconds setting to a duration, falling back to def.
func secondsToDuration(secs int, def int) time.Duration {
	if secs <= 0 {
		secs = def
	}
	return time.Duration(secs) * time.Second
}
