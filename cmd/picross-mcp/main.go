package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/picross-mcp/internal/config"
	"github.com/ironsheep/picross-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := os.Getenv("PICROSS_MCP_CONFIG")

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("picross-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		case "--write-config":
			path := config.GetConfigPath()
			if err := config.Default().SaveToFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote default configuration to %s\n", path)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("PICROSS_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Picross MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		cfg = loaded
		if debug {
			log.Printf("Loaded configuration from %s", configPath)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	srv := server.New(cfg)
	srv.Debug = debug
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("picross-mcp - MCP server that turns images into picross puzzles")
	fmt.Println()
	fmt.Println("Usage: picross-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config, -c <path>  Load configuration from a JSON file")
	fmt.Println("  --write-config       Write the default configuration to")
	fmt.Printf("                       %s and exit\n", config.GetConfigPath())
	fmt.Println("  --version, -v        Print version information")
	fmt.Println("  --help, -h           Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PICROSS_MCP_CONFIG=<path>    Configuration file (overridden by --config)")
	fmt.Println("  PICROSS_MCP_LOG_LEVEL=debug  Enable debug logging")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
