package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/KennyZhang12138/MyPython/mypython"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "inspect":
		return inspectCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return scanCommand(args[1:])
	}
}

func scanCommand(args []string) error {
	if len(args) != 1 {
		return usageError()
	}
	return scanFile(os.Stdout, args[0])
}

func scanFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("an error occurred while opening %s: %w", path, err)
	}
	defer f.Close()

	stream, err := mypython.Scan(f)
	if err != nil {
		// A malformed literal stops the scan; its message replaces the
		// token listing.
		fmt.Fprintf(w, "error: %v\n", err)
		return nil
	}
	for _, tok := range stream {
		fmt.Fprintln(w, tok)
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("filename is required")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <filename>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s inspect <filename>\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  <filename>          scan the file and print one line per token")
	fmt.Fprintln(os.Stderr, "  inspect <filename>  browse the token stream interactively")
	fmt.Fprintln(os.Stderr, "  help                print this message")
}
