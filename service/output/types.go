package output

import (
	"github.com/pywheeler/pywheeler/model"
	"github.com/pywheeler/pywheeler/shared/jsonoutput"
	"github.com/pywheeler/pywheeler/shared/spinner"
	"github.com/pywheeler/pywheeler/shared/steptable"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing run results
type Renderer interface {
	DrawRunTable(report model.RunReport)
	OutputRunJSON(report model.RunReport) error
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawRunTable(report model.RunReport) {
	steptable.DrawRunTable(report)
}

func (r *realRenderer) OutputRunJSON(report model.RunReport) error {
	return jsonoutput.OutputRunJSON(report)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderRun(report model.RunReport) error
	Format() Format
	StopSpinner()
}
