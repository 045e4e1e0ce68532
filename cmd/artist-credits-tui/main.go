package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/artist-credits/internal/config"
	"github.com/handiism/artist-credits/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	strictFlag := flag.Bool("strict", false, "Reject tokens after the top-level list")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *strictFlag {
		settings.RejectTrailing = true
	}

	if err := tui.Run(settings.ParserOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
