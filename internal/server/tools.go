package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// boardProperties returns the schema of the board generation options shared
// by every tool that builds a board from an image.
func boardProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"board_size": map[string]interface{}{
			"type":        "integer",
			"description": "Side length of the square board in cells. Default 16",
			"default":     16,
			"minimum":     1,
		},
		"color_threshold": map[string]interface{}{
			"type":        "number",
			"description": "RGB distance that counts as a colour edge in outline mode. Default 80",
			"default":     80,
		},
		"alpha_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Pixels with alpha strictly above this are opaque (1-255). Default 128",
			"default":     128,
		},
		"color_mode": map[string]interface{}{
			"type":        "boolean",
			"description": "Keep quantised cell colours instead of a single fill colour. Default false",
			"default":     false,
		},
		"policy": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"silhouette", "outline"},
			"description": "silhouette fills every opaque cell; outline fills only edge cells. Default silhouette",
			"default":     "silhouette",
		},
	}
}

func boardSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"description": "A picross board: rows of cells plus rowClues and columnClues, " +
			"as returned by picross_generate",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	previewProps := boardProperties()
	previewProps["board"] = boardSchema()
	previewProps["cell_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Side of one cell in output pixels. Default 16, at most render.max_cell_size (64)",
		"default":     16,
	}
	previewProps["show_solution"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Draw the solution (true) or the player's pushed and marked cells (false). Default true",
		"default":     true,
	}
	previewProps["show_clues"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Draw row and column clues in margins. Default true",
		"default":     true,
	}
	previewProps["format"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"png", "webp"},
		"description": "Output image format. Default png",
		"default":     "png",
	}

	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and the bounding box of its opaque content.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Board Generation
		{
			Name:        "picross_generate",
			Description: "Convert an image into a picross (nonogram) board. Transparent borders are trimmed, the content is rescaled to the board size and every cell gets row and column clues.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": boardProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "picross_check",
			Description: "Recompute clue completion for a board carrying the player's pushed cells, and report whether the puzzle is solved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"board": boardSchema(),
				},
				"required": []string{"board"},
			},
		},

		// Visualisation
		{
			Name:        "picross_preview",
			Description: "Render a board as a base64-encoded image. Pass a board to preview player progress, or an image path to generate and preview its board.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": previewProps,
			},
		},
		{
			Name:        "picross_palette",
			Description: "Generate a board from an image and list the colours of its filled cells, most frequent first.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": boardProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "picross_content_crop",
			Description: "Crop an image to the bounding box of its opaque content, the region a board is generated from, and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"alpha_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels with alpha strictly above this are content. Default 128",
						"default":     128,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to enlarge pixel art). Default 1.0. Output sides are capped at 4096 pixels",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
