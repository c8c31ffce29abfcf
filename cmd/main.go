package main

import (
	"brewin/internal/config"
	"brewin/internal/logger"
	"brewin/internal/runner"
	"brewin/pkg/color"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the Brewin interpreter.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.Trace, "t", false, "Trace every executed statement")
	flag.BoolVar(&options.Quiet, "q", false, "Suppress program output")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.CheckOnly, "check", false, "Load and validate programs without running them")
	flag.StringVar(&options.ConfigFile, "c", "", fmt.Sprintf("Config file (default ./%s when present)", config.DefaultFile))
	flag.IntVar(&options.MaxSteps, "m", 0, "Abort after this many statements (0 = unlimited)")

	flag.Parse()
	args := flag.Args()

	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		logger.Init(options.Verbose, options.NoColor)
		log.Fatal("Invalid configuration", "error", err)
	}
	options.Apply(cfg)

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>...\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFiles = args

	if err := options.Run(); err != nil {
		log.Fatal("Execution failed", "error", err)
	}
}
