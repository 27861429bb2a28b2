package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/IX-Erich/oregon-trail/internal/game"
)

func main() {
	var outPath string
	var basePath string

	flag.StringVar(&outPath, "out", "", "output path for the rules YAML (stdout when empty)")
	flag.StringVar(&basePath, "base", "", "existing rules file to start from instead of the built-in tables")
	flag.Parse()

	if err := run(os.Stdout, outPath, basePath); err != nil {
		die(err.Error())
	}
}

func run(stdout io.Writer, outPath, basePath string) error {
	rules := game.DefaultRules()
	if strings.TrimSpace(basePath) != "" {
		loaded, err := game.LoadRules(basePath)
		if err != nil {
			return err
		}
		rules = loaded
	}

	data, err := game.MarshalRules(rules)
	if err != nil {
		return err
	}
	if strings.TrimSpace(outPath) == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write rules: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", outPath)
	return nil
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
