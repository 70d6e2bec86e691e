package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BennettPhil/skill-openapi-validator/internal/mcpserver"
)

// HandleMCP serves the linter as an MCP tool over stdio until the client
// disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("mcp command takes no arguments, got %d", len(args))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
