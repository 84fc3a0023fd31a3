package config

import "time"

// SentimentConfig configures the external polarity classifier.
type SentimentConfig struct {
	UseClassifier bool   `json:"use_classifier" yaml:"use_classifier"`
	Endpoint      string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`
	APIKey        string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	MaxInputChars int    `json:"max_input_chars,omitempty" yaml:"max_input_chars,omitempty" validate:"omitempty,min=1"`
	BatchWorkers  int    `json:"batch_workers,omitempty" yaml:"batch_workers,omitempty" validate:"omitempty,min=1"`
	TimeoutSecs   int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultSentimentConfig creates default sentiment configuration
func NewDefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		UseClassifier: DefaultSentimentUseClassifier,
		Endpoint:      DefaultSentimentEndpoint,
		MaxInputChars: DefaultSentimentMaxInputChars,
		BatchWorkers:  DefaultSentimentBatchWorkers,
		TimeoutSecs:   DefaultSentimentTimeoutSecs,
	}
}

// Timeout returns the per-call classifier timeout.
func (c SentimentConfig) Timeout() time.Duration {
	return secondsToDuration(c.TimeoutSecs, DefaultSentimentTimeoutSecs)
}
