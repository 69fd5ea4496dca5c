// Package app wires configuration, providers and flows into a runnable
// service.
package app

import (
	"io"

	"rankcraft/internal/export"
	"rankcraft/internal/flows"
	"rankcraft/pkg/config"
)

// Service bundles everything a front end (HTTP or CLI) needs.
type Service struct {
	Config    *config.Config
	Generator *flows.Generator
	Exporter  export.Exporter
}

// Close releases provider resources held by the service.
func (s *Service) Close() error {
	if closer, ok := s.Exporter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
