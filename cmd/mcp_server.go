/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/josephgoksu/thinkwing/internal/domain"
	"github.com/josephgoksu/thinkwing/internal/logger"
	mcppresenter "github.com/josephgoksu/thinkwing/internal/mcp"
	"github.com/josephgoksu/thinkwing/internal/prompt"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server that exposes the
divergent-thinking tool to AI assistants like Claude Code and Cursor.

The tool generates structured creativity prompts from a thought:
- structured_process: multi-step thought sequences
- generate_branches: SCAMPER, random words, analogies, biomimicry
- perspective_shift: unusual viewpoints or six thinking hats
- creative_constraint: constraint application and relaxation
- combine_thoughts: thought merging and morphological analysis
- reverse_brainstorming: failure-mode inversion

Example usage with Claude Code:
  thinkwing mcp

The server will run until the client disconnects.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q for %q\nRun '%s --help' for usage", args[0], cmd.CommandPath(), cmd.Root().Name())
		}
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	// NOTE: stdio transport only. stdout must stay pure JSON-RPC.
}

// mcpMarkdownResponse wraps Markdown content in an MCP tool result.
func mcpMarkdownResponse(markdown string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: markdown}},
	}, nil
}

// mcpErrorResponse wraps an error in an MCP tool result with IsError=true.
// Per MCP spec: tool errors are returned in the result (not as protocol
// errors) so the LLM can see them and self-correct.
func mcpErrorResponse(err error) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: mcppresenter.FormatError(err.Error())}},
		IsError: true,
	}, nil
}

// mcpFormattedErrorResponse wraps pre-formatted error text with IsError=true.
func mcpFormattedErrorResponse(formattedError string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: formattedError}},
		IsError: true,
	}, nil
}

// initLookup builds the vocabulary lookup and applies any configured
// vocabulary packs. Missing pack directories are not an error.
func initLookup() (*domain.Lookup, error) {
	lookup := domain.New()

	packsDir := GetPacksDir()
	if err := lookup.LoadPacks(afero.NewOsFs(), packsDir); err != nil {
		return nil, fmt.Errorf("load vocabulary packs from %s: %w", packsDir, err)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[DEBUG] Vocabulary domains loaded: %d\n", len(lookup.Domains()))
	}
	return lookup, nil
}

func runMCPServer(ctx context.Context) error {
	// NOTE: MCP uses stdio transport. stdout MUST be pure JSON-RPC.
	// All status/debug output goes to stderr only.
	fmt.Fprintln(os.Stderr, "ThinkWing MCP Server starting...")

	lookup, err := initLookup()
	if err != nil {
		return fmt.Errorf("failed to initialize vocabulary: %w", err)
	}
	gen := prompt.NewGenerator(lookup)

	impl := &mcpsdk.Implementation{
		Name:    "thinkwing-mcp",
		Version: version,
	}

	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintf(os.Stderr, "✓ MCP connection established\n")
			if viper.GetBool("verbose") {
				fmt.Fprintf(os.Stderr, "[DEBUG] Client initialized\n")
			}
		},
	}

	server := mcpsdk.NewServer(impl, serverOpts)

	thinkTool := &mcpsdk.Tool{
		Name: "divergent-thinking",
		Description: `Generate divergent-thinking prompts from a thought. Use thinking_method to select operation:
- structured_process: step through a numbered thought sequence (default)
- generate_branches: produce 3 creative branches (SCAMPER, random words, analogies, biomimicry with use_advanced_techniques)
- perspective_shift: reframe from an unusual viewpoint (six thinking hats with use_advanced_techniques)
- creative_constraint: apply a creative constraint (constraint relaxation with use_advanced_techniques)
- combine_thoughts: merge thought and thought2 (morphological analysis with use_advanced_techniques)
- reverse_brainstorming: explore failure modes, then invert them

Optional: seed for reproducible output, domain for specialized vocabulary, constraints for constraint-aware prompts.`,
	}
	mcpsdk.AddTool(server, thinkTool, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcppresenter.DivergentToolParams]) (*mcpsdk.CallToolResultFor[any], error) {
		requestID := uuid.NewString()
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "[DEBUG] request %s: method=%s domain=%q\n", requestID, params.Arguments.ThinkingMethod, params.Arguments.Domain)
		}
		logger.SetLastThought(params.Arguments.Thought)

		result, err := mcppresenter.HandleThinkTool(gen, params.Arguments)
		if err != nil {
			return mcpErrorResponse(err)
		}
		if result.Error != "" {
			return mcpFormattedErrorResponse(mcppresenter.FormatError(result.Error))
		}
		return mcpMarkdownResponse(result.Content)
	})

	// Run the server (stdio transport only)
	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
