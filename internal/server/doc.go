// Package server runs the detector service's HTTP server with signal
// handling and graceful shutdown.
package server
