package server

// Server is the lifecycle of the running transports.
//
// RunServer blocks until a stop signal arrives and every transport has shut
// down; Shutdown stops them directly.
type Server interface {
	RunServer()
	Shutdown()
}
