package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/golangpki/goobj/obj"
)

const infoUsage = `goobj info - Resolve names or dotted OIDs against the registry

Usage:
  goobj info [options] QUERY...

Each QUERY may be a short name, a long name, or a dotted-decimal OID.
Prints the NID, both names, the dotted form and the DER content octets.

Options:
  -h, --help    Show help

Examples:
  goobj info RSA-SHA256
  goobj info sha256WithRSAEncryption 2.5.29.19
`

func cmdInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, infoUsage) }

	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || helpFlag {
		_, _ = fmt.Fprint(os.Stdout, infoUsage)
		return exitOK
	}

	queries := fs.Args()
	if len(queries) == 0 {
		printError("no queries specified")
		fmt.Fprint(os.Stderr, infoUsage)
		return exitError
	}

	status := exitOK
	for _, q := range queries {
		nid := obj.ByText(q)
		if nid == obj.NIDUndef {
			printError("no registry entry for %q", q)
			status = exitError
			continue
		}
		printEntry(obj.NIDToIdentifier(nid))
	}
	return status
}

func printEntry(id *obj.Identifier) {
	dotted, err := obj.Format(id, true)
	if err != nil {
		dotted = "(malformed)"
	}
	fmt.Printf("nid:   %d\n", id.NID())
	fmt.Printf("sn:    %s\n", orNone(id.ShortName()))
	fmt.Printf("ln:    %s\n", orNone(id.LongName()))
	fmt.Printf("oid:   %s\n", dotted)
	fmt.Printf("der:   %s\n", hex.EncodeToString(id.DER()))
	fmt.Println()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
