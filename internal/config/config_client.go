package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientConfig is the top-level scanner client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Camera contains capture command settings.
	Camera Camera
	// Gallery contains image picker settings.
	Gallery Gallery
	// Storage contains local storage settings.
	Storage Storage
	// Detector selects the barcode detector.
	Detector ClientDetector
	// ImagePath switches the client into one-shot mode when non-empty.
	ImagePath string
}

// ClientDetector holds the detector settings as seen by the client.
type ClientDetector struct {
	// Remote is true when detection goes through the detector service.
	Remote bool
	// Address is the base URL of the detector service.
	Address string
	// RequestTimeout bounds one remote detection request.
	RequestTimeout time.Duration
	// TryHarder and OneD tune the local decoder.
	TryHarder bool
	OneD      bool
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Camera:  cfg.Camera,
		Gallery: cfg.Gallery,
		Storage: cfg.Storage,
		Detector: ClientDetector{
			Remote:         strings.EqualFold(cfg.Detector.Mode, DetectorModeRemote),
			Address:        cfg.Detector.Address,
			RequestTimeout: cfg.Detector.RequestTimeout,
			TryHarder:      cfg.Detector.TryHarder,
			OneD:           cfg.Detector.OneD,
		},
		ImagePath: cfg.ImagePath,
	}
}
