// Package main provides a demo desktop for the gadget redraw engine.
//
// Usage:
//
//	gadget-demo run [-fps N] [-debug path]           Interactive desktop in the terminal
//	gadget-demo snapshot [-o out.png] [-w W] [-h H]  Render the desktop to a PNG
//	gadget-demo help                                 Show help
//
// Examples:
//
//	gadget-demo run -fps 30
//	gadget-demo snapshot -o desktop.png -w 800 -h 480
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gadget-demo - damage-tracking desktop demo

Usage:
  gadget-demo <command> [options]

Commands:
  run         Run the interactive desktop in the terminal
  snapshot    Render the desktop once and save it as an image
  version     Print version information
  help        Show this help message

Run options:
  -fps N        Repaint rate (1-240, default 60)
  -debug path   Write a debug log to path (same as GADGET_DEBUG=path)

Snapshot options:
  -o path       Output file, format from extension (default desktop.png)
  -w W          Width in pixels (default 640)
  -h H          Height in pixels (default 384)

Inside the desktop, drag window title bars to move them, click to raise,
Tab to cycle focus and q or Esc to quit.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runDesktop(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "snapshot":
		if err := runSnapshot(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gadget-demo version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
