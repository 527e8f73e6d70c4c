package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/picross-mcp/internal/imaging"
	"github.com/ironsheep/picross-mcp/internal/picross"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "picross_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.Debug {
		log.Printf("tools/call %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.Debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills omitted options from the server configuration
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/picross function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Board Generation
	case "picross_generate":
		return s.handlePicrossGenerate(args)
	case "picross_check":
		return s.handlePicrossCheck(args)

	// Visualisation
	case "picross_preview":
		return s.handlePicrossPreview(args)
	case "picross_palette":
		return s.handlePicrossPalette(args)
	case "picross_content_crop":
		return s.handlePicrossContentCrop(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Board Generation Handlers ===

// boardArgs are the board generation options. Nil fields fall back to the
// server configuration.
type boardArgs struct {
	Path           string   `json:"path"`
	BoardSize      *int     `json:"board_size"`
	ColorThreshold *float64 `json:"color_threshold"`
	AlphaThreshold *int     `json:"alpha_threshold"`
	ColorMode      *bool    `json:"color_mode"`
	Policy         *string  `json:"policy"`
}

// processingConfig merges a with the configured board defaults.
func (s *Server) processingConfig(a boardArgs) (picross.Config, error) {
	cfg := s.cfg.Board.ProcessingConfig()
	if a.BoardSize != nil {
		cfg.BoardSize = *a.BoardSize
	}
	if a.ColorThreshold != nil {
		cfg.ColorThreshold = *a.ColorThreshold
	}
	if a.AlphaThreshold != nil {
		cfg.AlphaThreshold = *a.AlphaThreshold
	}
	if a.ColorMode != nil {
		cfg.ColorMode = *a.ColorMode
	}
	if a.Policy != nil {
		p, err := picross.ParsePolicy(*a.Policy)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}

	if cfg.BoardSize > s.cfg.Board.MaxBoardSize {
		return cfg, fmt.Errorf("%w: board size %d exceeds maximum %d",
			picross.ErrInvalidConfig, cfg.BoardSize, s.cfg.Board.MaxBoardSize)
	}
	return cfg, cfg.Validate()
}

// generate loads the image at a.Path and converts it into a board.
func (s *Server) generate(a boardArgs) (*picross.Result, error) {
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	cfg, err := s.processingConfig(a)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	result, err := imaging.ProcessImage(img, cfg)
	if err != nil {
		return nil, err
	}
	if s.Debug {
		log.Printf("generated %dx%d board from %s (content %dx%d)",
			result.BoardSize, result.BoardSize, a.Path, result.Bounds.Width, result.Bounds.Height)
	}
	return result, nil
}

func (s *Server) handlePicrossGenerate(args json.RawMessage) (interface{}, error) {
	var a boardArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.generate(a)
}

type picrossCheckArgs struct {
	Board *picross.BoardData `json:"board"`
}

// CheckResult is the outcome of checking a board in play.
type CheckResult struct {
	Board    *picross.BoardData `json:"board"`
	Solved   bool               `json:"solved"`
	Mistakes int                `json:"mistakes"`
}

func (s *Server) handlePicrossCheck(args json.RawMessage) (interface{}, error) {
	var a picrossCheckArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Board == nil {
		return nil, errors.New("board is required")
	}
	if err := s.checkBoard(a.Board); err != nil {
		return nil, err
	}

	picross.RecalculateClueColors(a.Board)

	mistakes := 0
	for _, row := range a.Board.Rows {
		for _, c := range row.Cells {
			if c.Pushed && !c.Correct {
				mistakes++
			}
		}
	}

	return &CheckResult{
		Board:    a.Board,
		Solved:   a.Board.Solved() && mistakes == 0,
		Mistakes: mistakes,
	}, nil
}

// checkBoard rejects a client-supplied board that is malformed or larger
// than the configured maximum board size.
func (s *Server) checkBoard(board *picross.BoardData) error {
	if err := board.Validate(); err != nil {
		return err
	}
	if board.Size() > s.cfg.Board.MaxBoardSize {
		return fmt.Errorf("%w: board size %d exceeds maximum %d",
			picross.ErrInvalidConfig, board.Size(), s.cfg.Board.MaxBoardSize)
	}
	return nil
}

// === Visualisation Handlers ===

type picrossPreviewArgs struct {
	boardArgs
	Board        *picross.BoardData `json:"board"`
	CellSize     *int               `json:"cell_size"`
	ShowSolution *bool              `json:"show_solution"`
	ShowClues    *bool              `json:"show_clues"`
	Format       string             `json:"format"`
}

func (s *Server) handlePicrossPreview(args json.RawMessage) (interface{}, error) {
	var a picrossPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := s.cfg.Render.RenderOptions()
	if a.CellSize != nil {
		if *a.CellSize > s.cfg.Render.MaxCellSize {
			return nil, fmt.Errorf("%w: cell size %d exceeds maximum %d",
				picross.ErrInvalidConfig, *a.CellSize, s.cfg.Render.MaxCellSize)
		}
		opts.CellSize = *a.CellSize
	}
	if a.ShowSolution != nil {
		opts.ShowSolution = *a.ShowSolution
	}
	if a.ShowClues != nil {
		opts.ShowClues = *a.ShowClues
	}
	if a.Format == "" {
		a.Format = s.cfg.Render.Format
	}

	board := a.Board
	if board != nil {
		if err := s.checkBoard(board); err != nil {
			return nil, err
		}
	} else {
		result, err := s.generate(a.boardArgs)
		if err != nil {
			return nil, err
		}
		board = result.Board
	}

	return imaging.RenderBoardImage(board, opts, a.Format)
}

func (s *Server) handlePicrossPalette(args json.RawMessage) (interface{}, error) {
	var a boardArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	result, err := s.generate(a)
	if err != nil {
		return nil, err
	}
	return imaging.BoardPalette(result.Board)
}

type picrossContentCropArgs struct {
	Path           string  `json:"path"`
	AlphaThreshold *int    `json:"alpha_threshold"`
	Scale          float64 `json:"scale"`
}

func (s *Server) handlePicrossContentCrop(args json.RawMessage) (interface{}, error) {
	var a picrossContentCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	threshold := s.cfg.Board.ProcessingConfig().AlphaThreshold
	if a.AlphaThreshold != nil {
		threshold = *a.AlphaThreshold
	}
	if threshold == 0 {
		threshold = picross.DefaultAlphaThreshold
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("%w: alpha threshold must be between 0 and 255, got %d",
			picross.ErrInvalidConfig, threshold)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropToContent(img, threshold, a.Scale)
}
