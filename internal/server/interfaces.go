package server

// Server is the detector service's process lifecycle.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Shutdown stops accepting uploads and waits for in-flight scans.
	Shutdown()
}
