// Package output provides a service for rendering results to the console.
package output

import (
	"github.com/pywheeler/pywheeler/model"
)

// NewService creates a new output service with the specified format
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:   f,
		renderer: &realRenderer{},
	}
}

// NewServiceWithRenderer creates an output service with a custom renderer.
func NewServiceWithRenderer(format string, renderer Renderer) Service {
	svc := NewService(format).(*service)
	svc.renderer = renderer
	return svc
}

func (s *service) RenderRun(report model.RunReport) error {
	if s.format == FormatJSON {
		return s.renderer.OutputRunJSON(report)
	}
	s.renderer.DrawRunTable(report)
	return nil
}

func (s *service) Format() Format {
	return s.format
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
