package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/golangpki/goobj/obj"
)

const derUsage = `goobj der - Convert hex DER content octets to text

Usage:
  goobj der [options] HEX...

Prints the registered name when one exists, else the dotted-decimal
form. HEX is the content octets only, without the tag and length.

Options:
  -n, --numeric    Always print the dotted-decimal form
  -h, --help       Show help

Examples:
  goobj der 2a864886f70d01010b
  goobj der -n 551d13
`

func cmdDER(args []string) int {
	fs := flag.NewFlagSet("der", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, derUsage) }

	numeric := fs.Bool("n", false, "always print dotted-decimal")
	fs.BoolVar(numeric, "numeric", false, "always print dotted-decimal")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || helpFlag {
		_, _ = fmt.Fprint(os.Stdout, derUsage)
		return exitOK
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		printError("no DER input specified")
		fmt.Fprint(os.Stderr, derUsage)
		return exitError
	}

	status := exitOK
	for _, in := range inputs {
		der, err := hex.DecodeString(in)
		if err != nil {
			printError("bad hex %q: %v", in, err)
			status = exitError
			continue
		}
		text, err := obj.Format(obj.New(obj.NIDUndef, der, "", ""), *numeric)
		if err != nil {
			printError("malformed DER %q: %v", in, err)
			status = exitError
			continue
		}
		fmt.Println(text)
	}
	return status
}

const encodeUsage = `goobj encode - Convert dotted OIDs to hex DER content octets

Usage:
  goobj encode [options] OID...

Options:
  -h, --help    Show help

Examples:
  goobj encode 2.5.29.19
  goobj encode 1.2.840.113549.1.1.11
`

func cmdEncode(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, encodeUsage) }

	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || helpFlag {
		_, _ = fmt.Fprint(os.Stdout, encodeUsage)
		return exitOK
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		printError("no OIDs specified")
		fmt.Fprint(os.Stderr, encodeUsage)
		return exitError
	}

	status := exitOK
	for _, in := range inputs {
		der, err := obj.ParseText(in)
		if err != nil {
			printError("%v", err)
			status = exitError
			continue
		}
		fmt.Println(hex.EncodeToString(der))
	}
	return status
}
