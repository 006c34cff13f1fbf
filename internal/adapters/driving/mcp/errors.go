// Package mcp provides an MCP (Model Context Protocol) server adapter for ireum.
// It lets AI assistants evaluate names, list admissible stroke pairs and
// search the dictionary for suggestions.
package mcp

import "errors"

// ErrMissingEvaluationService is returned when the evaluation service is not provided.
var ErrMissingEvaluationService = errors.New("mcp: evaluation service is required")

// ErrCandidateServiceUnavailable is returned by candidate tools when no
// candidate service is configured.
var ErrCandidateServiceUnavailable = errors.New("mcp: candidate service is not configured")
