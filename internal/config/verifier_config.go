package config

import "time"

// VerifierConfig configures company verification.
type VerifierConfig struct {
	CheckTimeoutSecs int `json:"check_timeout_secs,omitempty" yaml:"check_timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultVerifierConfig creates default verifier configuration
func NewDefaultVerifierConfig() VerifierConfig {
	return VerifierConfig{
		CheckTimeoutSecs: DefaultVerifierCheckTimeoutSecs,
	}
}

// CheckTimeout bounds each network-bound verification check.
func (c VerifierConfig) CheckTimeout() time.Duration {
	return secondsToDuration(c.CheckTimeoutSecs, DefaultVerifierCheckTimeoutSecs)
}
