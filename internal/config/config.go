// Package config loads and validates the server's JSON configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/picross-mcp/internal/imaging"
	"github.com/ironsheep/picross-mcp/internal/picross"
)

// Config holds the application configuration
type Config struct {
	Board  BoardConfig  `json:"board"`
	Render RenderConfig `json:"render"`
}

// BoardConfig holds the defaults for board generation. Tool arguments
// override them per call.
type BoardConfig struct {
	BoardSize      int            `json:"board_size"`
	MaxBoardSize   int            `json:"max_board_size"`
	ColorThreshold float64        `json:"color_threshold"`
	AlphaThreshold int            `json:"alpha_threshold"`
	ColorMode      bool           `json:"color_mode"`
	Policy         picross.Policy `json:"policy"`
}

// RenderConfig holds the defaults for board previews
type RenderConfig struct {
	CellSize           int    `json:"cell_size"`
	MaxCellSize        int    `json:"max_cell_size"`
	ShowSolution       bool   `json:"show_solution"`
	ShowClues          bool   `json:"show_clues"`
	Format             string `json:"format"`
	GridColor          string `json:"grid_color"`
	MajorGridColor     string `json:"major_grid_color"`
	ClueColor          string `json:"clue_color"`
	CompletedClueColor string `json:"completed_clue_color"`
	MistakeColor       string `json:"mistake_color"`
	MarkColor          string `json:"mark_color"`
}

// Default returns a configuration with default values
func Default() *Config {
	pc := picross.DefaultConfig()
	ro := imaging.DefaultRenderOptions()
	return &Config{
		Board: BoardConfig{
			BoardSize:      pc.BoardSize,
			MaxBoardSize:   128,
			ColorThreshold: pc.ColorThreshold,
			AlphaThreshold: pc.AlphaThreshold,
			ColorMode:      pc.ColorMode,
			Policy:         pc.Policy,
		},
		Render: RenderConfig{
			CellSize:           ro.CellSize,
			MaxCellSize:        64,
			ShowSolution:       ro.ShowSolution,
			ShowClues:          ro.ShowClues,
			Format:             "png",
			GridColor:          ro.GridColor,
			MajorGridColor:     ro.MajorGridColor,
			ClueColor:          ro.ClueColor,
			CompletedClueColor: ro.CompletedClueColor,
			MistakeColor:       ro.MistakeColor,
			MarkColor:          ro.MarkColor,
		},
	}
}

// LoadFromFile loads configuration from a JSON file. Fields missing from
// the file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Board.MaxBoardSize < 1 {
		return fmt.Errorf("board.max_board_size must be positive")
	}

	if c.Board.BoardSize > c.Board.MaxBoardSize {
		return fmt.Errorf("board.board_size must not exceed board.max_board_size (%d)", c.Board.MaxBoardSize)
	}

	if err := c.Board.ProcessingConfig().Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if c.Render.CellSize < 1 {
		return fmt.Errorf("render.cell_size must be positive")
	}

	if c.Render.MaxCellSize < 1 || c.Render.MaxCellSize > imaging.MaxRenderDimension {
		return fmt.Errorf("render.max_cell_size must be between 1 and %d", imaging.MaxRenderDimension)
	}

	if c.Render.CellSize > c.Render.MaxCellSize {
		return fmt.Errorf("render.cell_size must not exceed render.max_cell_size (%d)", c.Render.MaxCellSize)
	}

	switch strings.ToLower(c.Render.Format) {
	case "png", "webp":
	default:
		return fmt.Errorf("render.format must be png or webp, got %q", c.Render.Format)
	}

	colors := []struct {
		name  string
		value string
	}{
		{"render.grid_color", c.Render.GridColor},
		{"render.major_grid_color", c.Render.MajorGridColor},
		{"render.clue_color", c.Render.ClueColor},
		{"render.completed_clue_color", c.Render.CompletedClueColor},
		{"render.mistake_color", c.Render.MistakeColor},
		{"render.mark_color", c.Render.MarkColor},
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col.value); err != nil {
			return fmt.Errorf("%s must be a hex colour, got %q", col.name, col.value)
		}
	}

	return nil
}

// ProcessingConfig converts the board defaults into a picross.Config.
func (b BoardConfig) ProcessingConfig() picross.Config {
	return picross.Config{
		BoardSize:      b.BoardSize,
		ColorThreshold: b.ColorThreshold,
		AlphaThreshold: b.AlphaThreshold,
		ColorMode:      b.ColorMode,
		Policy:         b.Policy,
	}
}

// RenderOptions converts the render defaults into imaging.RenderOptions.
func (r RenderConfig) RenderOptions() imaging.RenderOptions {
	return imaging.RenderOptions{
		CellSize:           r.CellSize,
		ShowSolution:       r.ShowSolution,
		ShowClues:          r.ShowClues,
		GridColor:          r.GridColor,
		MajorGridColor:     r.MajorGridColor,
		ClueColor:          r.ClueColor,
		CompletedClueColor: r.CompletedClueColor,
		MistakeColor:       r.MistakeColor,
		MarkColor:          r.MarkColor,
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "picross-mcp", "config.json")
}
