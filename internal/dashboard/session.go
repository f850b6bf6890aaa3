// Package dashboard assembles the complete dashboard report from one
// loaded dataset and manages the lifecycle of rendered charts.
package dashboard

import (
	"storeops/issuance-dash/internal/logging"
	"storeops/issuance-dash/internal/models"
)

// Chart is a handle to one rendered chart instance. Close releases any
// renderer-side resources.
type Chart interface {
	Close() error
}

// Renderer is the external charting collaborator. Given prepared chart
// data it draws the chart and returns a disposable handle.
type Renderer interface {
	Render(data models.ChartData) (Chart, error)
}

// Session owns the rendered chart per canvas id. Re-processing a file
// replaces each chart wholesale; the previous instance is disposed before
// the new one is installed. A Session is owned by a single goroutine.
type Session struct {
	logger logging.Logger
	charts map[string]Chart
}

// NewSession creates an empty dashboard session.
func NewSession(logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Session{logger: logger, charts: make(map[string]Chart)}
}

// Replace installs a chart for a canvas id, disposing any chart previously
// rendered there.
func (s *Session) Replace(canvasID string, chart Chart) {
	if prev, ok := s.charts[canvasID]; ok && prev != nil {
		if err := prev.Close(); err != nil {
			s.logger.WithError(err).WithField(logging.FieldChart, canvasID).Warn("Failed to dispose previous chart")
		}
	}
	s.charts[canvasID] = chart
}

// Chart returns the chart currently installed for a canvas id, if any.
func (s *Session) Chart(canvasID string) (Chart, bool) {
	c, ok := s.charts[canvasID]
	return c, ok
}

// Close disposes every chart in the session.
func (s *Session) Close() {
	for canvasID, chart := range s.charts {
		if chart == nil {
			continue
		}
		if err := chart.Close(); err != nil {
			s.logger.WithError(err).WithField(logging.FieldChart, canvasID).Warn("Failed to dispose chart")
		}
	}
	s.charts = make(map[string]Chart)
}
