// Command goobj is a CLI tool for looking up and converting ASN.1 object
// identifiers against the built-in registry.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or unresolved query
)

const usage = `goobj - object identifier lookup and conversion tool

Usage:
  goobj <command> [options] [arguments]

Commands:
  info    Resolve names or dotted OIDs against the registry
  der     Convert hex DER content octets to text
  encode  Convert dotted OIDs to hex DER content octets
  sigalg  Cross-reference signature algorithms
  list    List the registry table
  version Show version

Common options:
  -h, --help    Show help

Examples:
  goobj info RSA-SHA256
  goobj info 1.2.840.113549.1.1.11
  goobj der 2a864886f70d01010b
  goobj encode 2.5.29.19
  goobj sigalg sha256WithRSAEncryption
  goobj list -sn
`

var helpFlag bool

func main() {
	os.Exit(run())
}

func run() int {
	args := os.Args[1:]
	var cmd string
	var cmdArgs []string

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			helpFlag = true
		default:
			if cmd == "" && len(arg) > 0 && arg[0] != '-' {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if helpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "info":
		return cmdInfo(cmdArgs)
	case "der":
		return cmdDER(cmdArgs)
	case "encode":
		return cmdEncode(cmdArgs)
	case "sigalg":
		return cmdSigalg(cmdArgs)
	case "list":
		return cmdList(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("goobj %s\n", version)
}

func printError(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
