// Command s4map is a CLI front end over the mapfile decoding pipeline.
//
// Usage:
//
//	s4map decode [options] <file.map>
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable console logging"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("s4map %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "s4map"
	parser.LongDescription = "A decoder for Settlers-4-style .map files"

	addDecodeCommand(parser, &globals)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}
