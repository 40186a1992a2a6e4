package server

// Server is the lifecycle contract for the transport servers this package
// manages. RunServer blocks until shutdown is requested; Shutdown releases
// whatever the server holds.
type Server interface {
	RunServer()
	Shutdown()
}
