// Package server implements the MCP (Model Context Protocol) server for picross
// puzzle generation.
//
// This package provides a JSON-RPC 2.0 server that exposes board generation
// through the MCP protocol, so MCP-compatible clients can turn sprites and
// pixel art into nonogram puzzles and check a player's progress.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata, including content bounds
//   - image_dimensions: Get width and height
//
// Board Generation:
//   - picross_generate: Convert an image into a board with clues
//   - picross_check: Recompute clue completion for a board in play
//
// Visualisation:
//   - picross_preview: Render a board as PNG or WebP
//   - picross_palette: List the colours of a generated board
//   - picross_content_crop: Crop an image to its opaque content
//
// Board options omitted from a tool call take the values of the
// config.Config the server was created with.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Default())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
