package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/standardmetrics/smx-mcp/internal/app"
)

// smx-mcp speaks MCP over stdio for desktop clients. All diagnostics go to
// stderr; stdout carries only protocol frames.
func main() {
	a, err := app.NewApp("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	a.Logger.Info().Msg("Serving MCP over stdio")

	if err := server.ServeStdio(a.MCPServer); err != nil {
		a.Logger.Fatal().Err(err).Msg("Stdio server failed")
	}
}
