// Command nymctl is a utility for exercising the pseudonym/credential
// system end to end: generating keys, running the full nym/credential
// protocol over an in-memory channel, and benchmarking its operations.
package main

import (
	"fmt"
	"os"
)

// command represents a subcommand.
type command struct {
	Name        string
	Description string
	Execute     func(args []string) error
}

func main() {
	commands := []command{
		{
			Name:        "demo",
			Description: "Run the full pseudonym/credential protocol between a demo user and organizations",
			Execute:     cmdDemo,
		},
		{
			Name:        "bench",
			Description: "Benchmark the protocol's operations",
			Execute:     cmdBench,
		},
	}

	if len(os.Args) < 2 {
		showHelp(commands)
		os.Exit(1)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.Name == name {
			if err := c.Execute(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
	showHelp(commands)
	os.Exit(1)
}

func showHelp(commands []command) {
	fmt.Fprintln(os.Stderr, "Usage: nymctl <command> [flags]")
	fmt.Fprintln(os.Stderr, "\nAvailable commands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.Name, c.Description)
	}
}
