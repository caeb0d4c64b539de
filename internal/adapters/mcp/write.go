package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// RegisterWriteTools adds all mutating shelf tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, lib ports.Library) {
	s.AddTool(addTool(), addHandler(lib))
	s.AddTool(setProgressTool(), setProgressHandler(lib))
	s.AddTool(selectTool(), selectHandler(lib))
	s.AddTool(removeTool(), removeHandler(lib))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a book to the shelf. A cover key is generated unless one is given."),
		mcp.WithString("name",
			mcp.Description("Book title"),
			mcp.Required(),
		),
		mcp.WithString("author",
			mcp.Description("Author, optional"),
		),
		mcp.WithString("duration",
			mcp.Description("Total length as hh:mm or hh:mm:ss"),
			mcp.Required(),
		),
		mcp.WithString("cover",
			mcp.Description("Cover file name in the covers directory, optional"),
		),
	)
}

func addHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		duration, err := domain.ParseTime(req.GetString("duration", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewAddBookCommand(lib, req.GetString("name", ""), req.GetString("author", ""), duration)
		cmd.CoverKey = req.GetString("cover", "")
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_progress ---

func setProgressTool() mcp.Tool {
	return mcp.NewTool("set_progress",
		mcp.WithDescription("Move the playback position of a book. Give either position (hh:mm[:ss]) or finished=true."),
		mcp.WithNumber("id",
			mcp.Description("Book ID"),
			mcp.Required(),
		),
		mcp.WithString("position",
			mcp.Description("New position as hh:mm or hh:mm:ss"),
		),
		mcp.WithBoolean("finished",
			mcp.Description("Move the book to its end"),
		),
	)
}

func setProgressHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))

		if req.GetBool("finished", false) {
			result, err := commands.NewFinishBookCommand(lib, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}

		raw := req.GetString("position", "")
		if raw == "" {
			return toolError(fmt.Errorf("position or finished is required"))
		}
		position, err := domain.ParseTime(raw)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewSetProgressCommand(lib, id, position).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- select ---

func selectTool() mcp.Tool {
	return mcp.NewTool("select",
		mcp.WithDescription("Mark a book as the one currently playing. The shelf moves its playing indicator."),
		mcp.WithNumber("id",
			mcp.Description("Book ID"),
			mcp.Required(),
		),
	)
}

func selectHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))

		book, err := commands.NewSelectBookCommand(lib, lib, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Now playing %d %s", book.ID, book.Name)), nil
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove a book from the shelf. Its listening progress is lost."),
		mcp.WithNumber("id",
			mcp.Description("Book ID"),
			mcp.Required(),
		),
	)
}

func removeHandler(lib ports.Library) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))

		result, err := commands.NewRemoveBookCommand(lib, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
