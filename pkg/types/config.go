package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request. The
	// desktop-browser default keeps the scrape indistinguishable from a
	// normal page view.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for the page fetch and slide extraction stage.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxProbeSlides bounds the HEAD-probe binary search used when the
	// page markup does not reveal the slide count (default 300).
	MaxProbeSlides int `json:"max_probe_slides" yaml:"max_probe_slides"`
}

// DownloadConfig holds settings for the slide image download stage.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// Delay is the politeness pause between consecutive image requests
	// (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay"`

	// MaxRetries bounds the retry attempts for rate-limited image requests
	// (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputConfig holds settings for PDF assembly and the metadata sidecar.
type OutputConfig struct {
	// Dir is the directory the PDF is written to (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// Metadata enables writing a YAML sidecar record next to the PDF.
	Metadata bool `json:"metadata" yaml:"metadata"`
}
