package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/deckwise/scrybe/internal/assemble"
	"github.com/deckwise/scrybe/internal/pipeline"
)

// mcpCmd exposes the translator as an MCP stdio server so editor agents and
// chat clients can call it as a tool.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing the translator",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, store, err := buildPipeline(ctx)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}

		s := server.NewMCPServer("scrybe", "1.0.0", server.WithToolCapabilities(false))

		tool := mcp.NewTool("translate_query",
			mcp.WithDescription("Translate a natural-language trading card search into Scryfall query syntax"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("The search request in plain English"),
			),
			mcp.WithString("format",
				mcp.Description("Deck format filter applied when the query has none"),
			),
			mcp.WithBoolean("validate",
				mcp.Description("Validate the result against the live search API"),
			),
		)

		s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query, err := req.RequireString("query")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			res := p.Run(ctx, query, pipeline.Context{
				StartTime: time.Now(),
				Options:   pipelineOptions(req.GetBool("validate", false)),
				Filters:   assemble.Filters{Format: req.GetString("format", "")},
			})

			out, err := json.Marshal(res)
			if err != nil {
				return nil, fmt.Errorf("failed to encode result: %w", err)
			}
			return mcp.NewToolResultText(string(out)), nil
		})

		return server.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
