// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the OpenAPI linter as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	oasvalidator "github.com/BennettPhil/skill-openapi-validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasvalidator MCP server: statically lints OpenAPI 3.x documents.

The lint tool accepts a spec as a file path or inline content (JSON or YAML)
and returns ordered findings with severity, a dotted JSON path locating the
offending node, and a message. Strict mode promotes every warning to an
error. No network calls are made and external $refs are not resolved.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasvalidator", Version: oasvalidator.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Lint an OpenAPI 3.x document and report structural defects (errors) and style/completeness issues (warnings). Each finding carries a severity, a dotted path to the offending node, and a message. Use strict=true to promote warnings to errors, no_warnings=true to report errors only.",
	}, handleLint)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
