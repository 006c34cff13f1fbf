package mcp

import (
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Evaluation scores names and describes pillar numbers.
	Evaluation driving.EvaluationService

	// Candidate lists stroke pairs and suggests names. Optional.
	Candidate driving.CandidateService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Evaluation == nil {
		return ErrMissingEvaluationService
	}
	return nil
}
