package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// RegisterReadTools adds all read-only shelf tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, lib ports.Library) {
	s.AddTool(listTool(), listHandler(lib))
	s.AddTool(getTool(), getHandler(lib))
	s.AddTool(currentTool(), currentHandler(lib))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List every book on the shelf in shelf order, with its ID, progress and whether it is currently playing."),
		mcp.WithString("query",
			mcp.Description("Only list books whose title or author contains this text (case-insensitive)."),
		),
	)
}

func listHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := strings.ToLower(strings.TrimSpace(req.GetString("query", "")))

		books, err := commands.NewListBooksCommand(lib).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		current, ok, err := lib.CurrentBookID(ctx)
		if err != nil {
			return toolError(err)
		}

		if query != "" {
			filtered := books[:0]
			for _, b := range books {
				if strings.Contains(strings.ToLower(b.Name), query) ||
					strings.Contains(strings.ToLower(b.Author), query) {
					filtered = append(filtered, b)
				}
			}
			books = filtered
		}

		return formatEntities(books, func(b domain.Book) string {
			line := formatBook(b)
			if b.Finished() {
				line += "  [finished]"
			}
			if ok && b.ID == current {
				line += "  [playing]"
			}
			return line
		})
	}
}

// --- get ---

func getTool() mcp.Tool {
	return mcp.NewTool("get",
		mcp.WithDescription("Show one book by ID."),
		mcp.WithNumber("id",
			mcp.Description("Book ID as returned by list"),
			mcp.Required(),
		),
	)
}

func getHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))

		book, err := commands.NewGetBookCommand(lib, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatBookDetail(*book)), nil
	}
}

// --- current ---

func currentTool() mcp.Tool {
	return mcp.NewTool("current",
		mcp.WithDescription("Show the book that is currently playing, if any."),
	)
}

func currentHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		book, err := commands.NewCurrentBookCommand(lib, lib).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if book == nil {
			return mcp.NewToolResultText("Nothing is playing."), nil
		}
		return mcp.NewToolResultText(formatBookDetail(*book)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatBook(b domain.Book) string {
	line := fmt.Sprintf("%d  %s", b.ID, b.Name)
	if b.HasAuthor() {
		line += " by " + b.Author
	}
	return line + fmt.Sprintf("  %s/%s", domain.FormatTime(b.Position), domain.FormatTime(b.Duration))
}

func formatBookDetail(b domain.Book) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %d\n", b.ID)
	fmt.Fprintf(&sb, "Title: %s\n", b.Name)
	if b.HasAuthor() {
		fmt.Fprintf(&sb, "Author: %s\n", b.Author)
	}
	fmt.Fprintf(&sb, "Position: %s of %s (%.0f%%)\n",
		domain.FormatTime(b.Position), domain.FormatTime(b.Duration), b.Progress()*100)
	fmt.Fprintf(&sb, "Position (ms): %d\n", b.Position)
	fmt.Fprintf(&sb, "Finished: %t\n", b.Finished())
	fmt.Fprintf(&sb, "Cover: %s\n", b.CoverKey)
	return sb.String()
}
