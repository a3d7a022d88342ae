package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/s4reader/s4map/internal/s4log"
	"github.com/s4reader/s4map/mapfile"
)

type decodeCommand struct {
	Args struct {
		File string `positional-arg-name:"file" description:"Map file to decode"`
	} `positional-args:"yes"`

	globals *globalOptions
}

func (c *decodeCommand) Execute(args []string) error {
	if c.Args.File == "" {
		return fmt.Errorf("no input file specified")
	}

	if c.globals.Verbose {
		zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		s4log.SetLogger(s4log.NewZerologAdapter(zlog))
	}

	m, err := mapfile.Open(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", c.Args.File, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func addDecodeCommand(parser *flags.Parser, globals *globalOptions) {
	_, err := parser.AddCommand("decode",
		"Decode a map file and print it as JSON",
		"Reads a Settlers-4-style .map file, runs the full decoding pipeline,\n"+
			"and prints the result as indented JSON.",
		&decodeCommand{globals: globals})
	if err != nil {
		panic(err)
	}
}
