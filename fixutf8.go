package main

import (
	"errors"
	common "fixutf8/Common"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags" // go-flags
)

var (
	version = "dev"
	helpMsg = `fixutf8 - rewrite a text file of unknown encoding as UTF-8 without BOM

Usage: fixutf8 [--debug/-d] [--version/-v] [--help/-h] <input> [output]
Examples:
   fixutf8 index.html                  # fix index.html in place
   fixutf8 index.html index.utf8.html  # write the result to another file
   fixutf8 -d index.html               # same, with debug output on stderr
Encodings are tried in order: utf-8, cp1251, cp866, windows-1251.
The first one that decodes the whole file is used.`
)

type Option struct {
	Version bool `short:"v" long:"version" description:"Show version message"`
	Debug   bool `short:"d" long:"debug" description:"Setup debug mode"`
	Help    bool `short:"h" long:"help" description:"Show help message"`
	Args    struct {
		Input  string `positional-arg-name:"input"`
		Output string `positional-arg-name:"output"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opt Option
	if _, err := flags.NewParser(&opt, flags.None).ParseArgs(args); err != nil {
		handleError(stderr, err)
		fmt.Fprintln(stdout, helpMsg)
		return 1
	}

	if opt.Help {
		fmt.Fprintln(stdout, helpMsg)
		return 0
	}
	if opt.Version {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if opt.Args.Input == "" {
		fmt.Fprintln(stdout, helpMsg)
		return 1
	}

	cfg := common.LoadConfig()
	if opt.Debug {
		cfg.LogLevel = "DEBUG"
	}
	logger := common.SetupLogger(cfg, stderr)

	fixer := common.NewFixer(stdout, logger, cfg.GuessConfidence)
	if _, err := fixer.Fix(opt.Args.Input, opt.Args.Output); err != nil {
		if !errors.Is(err, common.ErrExhausted) {
			handleError(stderr, err)
		}
		return 1
	}
	return 0
}

func handleError(w io.Writer, err error) {
	fmt.Fprintln(w, "error: ["+err.Error()+"]")
}
