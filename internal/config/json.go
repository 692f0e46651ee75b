package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Camera struct {
		Command  string   `json:"command"`
		MediaDir string   `json:"media_dir"`
		Timeout  Duration `json:"timeout"`
	} `json:"camera,omitempty"`

	Gallery struct {
		Dir string `json:"dir"`
	} `json:"gallery,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Detector struct {
		Mode           string   `json:"mode"`
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		TryHarder      bool     `json:"try_harder"`
		OneD           bool     `json:"one_d"`
	} `json:"detector,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Camera: Camera{
			Command:  jsonCfg.Camera.Command,
			MediaDir: jsonCfg.Camera.MediaDir,
			Timeout:  time.Duration(jsonCfg.Camera.Timeout),
		},
		Gallery: Gallery{
			Dir: jsonCfg.Gallery.Dir,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Detector: Detector{
			Mode:           jsonCfg.Detector.Mode,
			Address:        jsonCfg.Detector.Address,
			RequestTimeout: time.Duration(jsonCfg.Detector.RequestTimeout),
			TryHarder:      jsonCfg.Detector.TryHarder,
			OneD:           jsonCfg.Detector.OneD,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
