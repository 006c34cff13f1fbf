package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ireum resources.
	uriScheme = "ireum://"

	fortunesPath = "fortunes"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + fortunesPath,
		Name:        "fortunes",
		Description: "The 81-number fortune table with tier, element and yin-yang of each number",
		MIMEType:    "application/json",
	}, s.handleFortunesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + fortunesPath + "/{number}",
		Name:        "fortune",
		Description: "Fortune of a single pillar number",
		MIMEType:    "application/json",
	}, s.handleFortuneResource)
}

// handleFortunesResource returns every number of the fortune table.
func (s *Server) handleFortunesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	evaluation := s.Ports().Evaluation
	table := make([]FortuneOutput, 0, domain.MaxStrokeNumber)
	for n := 1; n <= domain.MaxStrokeNumber; n++ {
		f, err := evaluation.Fortune(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("fortune %d: %w", n, err)
		}
		table = append(table, toFortuneOutput(f))
	}
	return jsonResource(req.Params.URI, table)
}

// handleFortuneResource returns one number: ireum://fortunes/{number}.
func (s *Server) handleFortuneResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	n, ok := extractNumber(req.Params.URI)
	if !ok || n < 1 || n > domain.MaxStrokeNumber {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	f, err := s.Ports().Evaluation.Fortune(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("fortune %d: %w", n, err)
	}
	return jsonResource(req.Params.URI, toFortuneOutput(f))
}

// extractNumber parses the trailing number of ireum://fortunes/{number}.
func extractNumber(uri string) (int, bool) {
	rest, ok := strings.CutPrefix(uri, uriScheme+fortunesPath+"/")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
