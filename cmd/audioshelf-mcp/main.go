package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "audioshelf/internal/adapters/mcp"
	"audioshelf/internal/adapters/sqlite"
	"audioshelf/internal/config"
	"audioshelf/internal/logging"
)

func main() {
	libraryFlag := flag.String("library", "",
		"path to the library database (default library.path from config, "+config.DefaultLibraryPath+")")
	flag.Parse()

	cfg, err := loadConfig(".", *libraryFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audioshelf-mcp: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audioshelf-mcp: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

// loadConfig reads the same configuration as the TUI and the CLI, so all
// three open one library unless --library says otherwise.
func loadConfig(dir, library string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.OverrideLibraryPath(library)
	return cfg, nil
}

func run(cfg *config.Config, log *zap.Logger) error {
	lib := sqlite.NewLibrary()
	if err := lib.Open(cfg.Library.Path); err != nil {
		return err
	}
	defer lib.Close()

	mcpServer := newServer(lib)

	log.Info("serving MCP on stdio", zap.String("library", cfg.Library.Path))
	return server.ServeStdio(mcpServer)
}

func newServer(lib *sqlite.Library) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"audioshelf-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, lib)
	mcpadapter.RegisterWriteTools(mcpServer, lib)
	return mcpServer
}
