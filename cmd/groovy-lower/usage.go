package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  groovy-lower [--config <file>] [--verbose] lower [--mode=statement|expression|annotation] [--format=tree|json] [--node <Kind>] <file.yml|file.java>")
	fmt.Fprintln(os.Stderr, "  groovy-lower [--config <file>] [--verbose] parse <file.java>")
	fmt.Fprintln(os.Stderr, "  groovy-lower [--config <file>] [--verbose] fixtures run [dir]")
	fmt.Fprintln(os.Stderr, "  groovy-lower [--config <file>] [--verbose] fixtures fetch [--url <repo>] [--rev <sha>|--tag <tag>|--branch <name>] [--cache <dir>]")
	fmt.Fprintln(os.Stderr, "  groovy-lower version")
}
