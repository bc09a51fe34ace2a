// Package server runs the account service transports.
//
// It owns the HTTP and gRPC server lifecycles: listening, signal handling
// and graceful shutdown of every enabled transport.
package server
