package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/IX-Erich/oregon-trail/internal/cli"
	"github.com/IX-Erich/oregon-trail/internal/game"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		opts        cli.Options
		rulesPath   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&opts.Name, "name", "", "name of the party leader")
	flag.StringVar(&opts.Profession, "profession", "", "chosen profession (banker, carpenter, farmer, doctor)")
	flag.StringVar(&opts.Difficulty, "difficulty", "", "difficulty setting (easy, normal, hard)")
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed for reproducible games (0 picks one)")
	flag.StringVar(&rulesPath, "rules", "", "YAML file overriding difficulty and trading post tables")
	flag.Parse()

	if showVersion {
		fmt.Printf("Oregon Trail %s (%s) %s\n", version, commit, date)
		return
	}

	if rulesPath != "" {
		rules, err := game.LoadRules(rulesPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts.Rules = &rules
	}

	if err := cli.NewShell(os.Stdin, os.Stdout).Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
