package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-a detector service listen address in format [host]:[port]
//	-c/-config json file path with configs
//	-d database DSN (SQLite file)
//	-camera-cmd capture command, {output} is replaced with the target file
//	-media-dir directory for captured images
//	-camera-timeout capture timeout (e.g., "30s")
//	-gallery-dir directory the image picker opens in
//	-detector detector mode: local or remote
//	-detector-address detector service address
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-try-harder slower, more thorough local decoding
//	-oned enable 1D symbologies
//	-max-upload-size upload limit of the detector service in bytes
//	-image scan this image once and print the result
//	-log-file client log file path
//	-version application version
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var databaseDSN string
	var cameraCommand, mediaDir string
	var cameraTimeout time.Duration
	var galleryDir string
	var detectorMode, detectorAddress string
	var requestTimeout time.Duration
	var tryHarder, oneD bool
	var maxUploadSize int64
	var imagePath string
	var logFile string
	var version string

	fs := flag.NewFlagSet("go-qr-scanner", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cameraCommand, "camera-cmd", "", "Capture command, {output} is replaced with the target file")
	fs.StringVar(&mediaDir, "media-dir", "", "Directory for captured images")
	fs.DurationVar(&cameraTimeout, "camera-timeout", 0, "Capture timeout (e.g., 30s)")
	fs.StringVar(&galleryDir, "gallery-dir", "", "Directory the image picker opens in")
	fs.StringVar(&detectorMode, "detector", "", "Detector mode: local or remote")
	fs.StringVar(&detectorAddress, "detector-address", "", "Detector service address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&tryHarder, "try-harder", false, "Slower, more thorough local decoding")
	fs.BoolVar(&oneD, "oned", false, "Enable 1D symbologies")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Upload limit in bytes")
	fs.StringVar(&imagePath, "image", "", "Scan this image once and print the result")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			LogFile: logFile,
		},
		Camera: Camera{
			Command:  cameraCommand,
			MediaDir: mediaDir,
			Timeout:  cameraTimeout,
		},
		Gallery: Gallery{
			Dir: galleryDir,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Detector: Detector{
			Mode:           detectorMode,
			Address:        detectorAddress,
			RequestTimeout: requestTimeout,
			TryHarder:      tryHarder,
			OneD:           oneD,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		ImagePath:    imagePath,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
