package config

import "fmt"

// ServerConfig is the detector service configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains the version reported by /api/version.
	App App
	// Server contains listen address and limits.
	Server Server
	// Detector tunes the decoder used by the service.
	Detector Detector
}

// GetServerConfig builds and validates the detector service config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:      cfg.App,
		Server:   cfg.Server,
		Detector: cfg.Detector,
	}

	return serverCfg, serverCfg.validate()
}
