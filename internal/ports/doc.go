// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters such as the CLI. Repository ports are implemented by storage
// adapters and called by the application layer.
package ports
