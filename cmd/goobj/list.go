package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/golangpki/goobj/obj"
)

const listUsage = `goobj list - List the registry table

Usage:
  goobj list [options]

Options:
  -sn           Only entries with a short name
  -ln           Only entries with a long name
  -der          Include DER content octets
  -h, --help    Show help

Examples:
  goobj list
  goobj list -sn -der
`

func cmdList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, listUsage) }

	onlyShort := fs.Bool("sn", false, "only entries with a short name")
	onlyLong := fs.Bool("ln", false, "only entries with a long name")
	withDER := fs.Bool("der", false, "include DER content octets")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || helpFlag {
		_, _ = fmt.Fprint(os.Stdout, listUsage)
		return exitOK
	}

	if len(fs.Args()) > 0 {
		printError("list takes no arguments")
		return exitError
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for id := range obj.Objects() {
		if *onlyShort && id.ShortName() == "" {
			continue
		}
		if *onlyLong && id.LongName() == "" {
			continue
		}
		dotted, err := obj.Format(id, true)
		if err != nil {
			dotted = "(malformed)"
		}
		if *withDER {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", id.NID(), dotted,
				orNone(id.ShortName()), orNone(id.LongName()), hex.EncodeToString(id.DER()))
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", id.NID(), dotted,
				orNone(id.ShortName()), orNone(id.LongName()))
		}
	}
	_ = w.Flush()
	return exitOK
}
