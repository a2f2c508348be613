package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golangpki/goobj/obj"
)

const sigalgUsage = `goobj sigalg - Cross-reference signature algorithms

Usage:
  goobj sigalg [options] QUERY...
  goobj sigalg -digest NAME -pubkey NAME

With QUERY arguments, resolves each as a signature algorithm and prints
its digest and public key algorithm. With -digest and -pubkey, performs
the reverse lookup.

Options:
  -digest NAME    Digest algorithm for reverse lookup
  -pubkey NAME    Public key algorithm for reverse lookup
  -h, --help      Show help

Examples:
  goobj sigalg sha256WithRSAEncryption
  goobj sigalg -digest SHA256 -pubkey rsaEncryption
`

func cmdSigalg(args []string) int {
	fs := flag.NewFlagSet("sigalg", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, sigalgUsage) }

	digestName := fs.String("digest", "", "digest algorithm for reverse lookup")
	pubkeyName := fs.String("pubkey", "", "public key algorithm for reverse lookup")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || helpFlag {
		_, _ = fmt.Fprint(os.Stdout, sigalgUsage)
		return exitOK
	}

	if *digestName != "" || *pubkeyName != "" {
		return sigalgReverse(*digestName, *pubkeyName)
	}

	queries := fs.Args()
	if len(queries) == 0 {
		printError("no signature algorithms specified")
		fmt.Fprint(os.Stderr, sigalgUsage)
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
		digest, pubkey, ok := obj.FindSignatureAlgorithms(nid)
		if !ok {
			printError("%q is not a registered signature algorithm", q)
			status = exitError
			continue
		}
		fmt.Printf("%s: digest=%s pubkey=%s\n", nidLabel(nid), nidLabel(digest), nidLabel(pubkey))
	}
	return status
}

func sigalgReverse(digestName, pubkeyName string) int {
	digest := obj.NIDUndef
	if digestName != "" {
		if digest = obj.ByText(digestName); digest == obj.NIDUndef {
			printError("no registry entry for digest %q", digestName)
			return exitError
		}
	}
	pubkey := obj.ByText(pubkeyName)
	if pubkey == obj.NIDUndef {
		printError("no registry entry for public key algorithm %q", pubkeyName)
		return exitError
	}
	sign, ok := obj.FindSignatureByAlgorithms(digest, pubkey)
	if !ok {
		printError("no signature algorithm pairs digest=%s with pubkey=%s",
			nidLabel(digest), nidLabel(pubkey))
		return exitError
	}
	fmt.Println(nidLabel(sign))
	return exitOK
}

// nidLabel names a NID for display: long name, short name, then the raw
// number. NIDUndef prints as "(none)" since the signature table uses it
// for schemes without a separate digest.
func nidLabel(nid obj.NID) string {
	if nid == obj.NIDUndef {
		return "(none)"
	}
	if ln := obj.NIDToLongName(nid); ln != "" {
		return ln
	}
	if sn := obj.NIDToShortName(nid); sn != "" {
		return sn
	}
	return fmt.Sprintf("nid %d", nid)
}
