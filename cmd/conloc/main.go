package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/conloc/anchor"
	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
	"xdao.co/conloc/locid"
	"xdao.co/conloc/model"
	"xdao.co/conloc/schemes"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "invert":
		return cmdInvert(args[1:], out, errOut)
	case "reanchor":
		return cmdReanchor(args[1:], out, errOut)
	case "convert":
		return cmdConvert(args[1:], out, errOut)
	case "reverse":
		return cmdReverse(args[1:], out, errOut)
	case "loc-id":
		return cmdLocID(args[1:], out, errOut)
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "schemes":
		return cmdSchemes(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "conloc: relative location algebra CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  conloc invert --ancestry <location> <target>")
	fmt.Fprintln(w, "  conloc reanchor --ancestry <location> --frame <location> <target>")
	fmt.Fprintln(w, "  conloc convert [--width 32|20] [--network <net>] [--schemes <list>] <location>")
	fmt.Fprintln(w, "  conloc reverse [--width 32|20] [--network <net>] [--schemes <list>] <0xhex>")
	fmt.Fprintln(w, "  conloc loc-id <location>")
	fmt.Fprintln(w, "  conloc encode <location>")
	fmt.Fprintln(w, "  conloc schemes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - locations use the text form, e.g. ../Parachain(2000)/PalletInstance(42)")
	fmt.Fprintln(w, "  - 'here' names the empty location")
	fmt.Fprintln(w, "  - --ancestry is the descend-only path from the root to the local system")
	fmt.Fprintln(w, "  - --network is any, polkadot, kusama, or 0x-prefixed hex")
	fmt.Fprintln(w, "  - --schemes is a comma-separated ordered list (see 'conloc schemes')")
}

func cmdInvert(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("invert", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var ancestry string
	fs.StringVar(&ancestry, "ancestry", "here", "Descend-only path from the root to the local system")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: conloc invert --ancestry <location> <target>")
		return 2
	}

	iv, ok := newInverter(ancestry, errOut)
	if !ok {
		return 2
	}
	target, err := loc.ParseLocation(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid target: %v\n", err)
		return 2
	}
	inverted, err := iv.Invert(target)
	if err != nil {
		fmt.Fprintf(errOut, "invert: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, inverted)
	return 0
}

func cmdReanchor(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("reanchor", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var ancestry string
	var frame string
	fs.StringVar(&ancestry, "ancestry", "here", "Descend-only path from the root to the local system")
	fs.StringVar(&frame, "frame", "", "Destination frame as seen from the local system")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if frame == "" {
		fmt.Fprintln(errOut, "missing --frame")
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: conloc reanchor --ancestry <location> --frame <location> <target>")
		return 2
	}

	iv, ok := newInverter(ancestry, errOut)
	if !ok {
		return 2
	}
	frameLoc, err := loc.ParseLocation(frame)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --frame: %v\n", err)
		return 2
	}
	target, err := loc.ParseLocation(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid target: %v\n", err)
		return 2
	}

	inverted, err := iv.Invert(frameLoc)
	if err != nil {
		fmt.Fprintf(errOut, "invert frame: %v\n", err)
		return 1
	}
	reframed, err := anchor.Reanchor(target, inverted)
	if err != nil {
		fmt.Fprintf(errOut, "reanchor: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, reframed)
	return 0
}

func cmdConvert(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(errOut)

	chainFlags := registerChainFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: conloc convert [--width 32|20] [--network <net>] [--schemes <list>] <location>")
		return 2
	}

	chain, ok := chainFlags.build(errOut)
	if !ok {
		return 2
	}
	l, err := loc.ParseLocation(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid location: %v\n", err)
		return 2
	}
	a, err := chain.Convert(l)
	if err != nil {
		fmt.Fprintf(errOut, "convert: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, model.FromAccount(a))
	return 0
}

func cmdReverse(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("reverse", flag.ContinueOnError)
	fs.SetOutput(errOut)

	chainFlags := registerChainFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: conloc reverse [--width 32|20] [--network <net>] [--schemes <list>] <0xhex>")
		return 2
	}

	chain, ok := chainFlags.build(errOut)
	if !ok {
		return 2
	}
	a, err := model.ToAccount(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid account: %v\n", err)
		return 2
	}
	l, err := chain.Reverse(a)
	if err != nil {
		fmt.Fprintf(errOut, "reverse: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, l)
	return 0
}

func cmdLocID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("loc-id", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: conloc loc-id <location>")
		return 2
	}
	l, err := loc.ParseLocation(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid location: %v\n", err)
		return 2
	}
	id, err := locid.IDString(l)
	if err != nil {
		fmt.Fprintf(errOut, "loc-id: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id)
	return 0
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: conloc encode <location>")
		return 2
	}
	l, err := loc.ParseLocation(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid location: %v\n", err)
		return 2
	}
	b, err := l.EncodeBinary()
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "0x%s\n", hex.EncodeToString(b))
	return 0
}

func cmdSchemes(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("schemes", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	for _, s := range schemes.List() {
		if s.Description == "" {
			_, _ = fmt.Fprintf(out, "%s\n", s.Name)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\n", s.Name, s.Description)
	}
	return 0
}

func newInverter(ancestry string, errOut io.Writer) (*anchor.Inverter, bool) {
	l, err := loc.ParseLocation(ancestry)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --ancestry: %v\n", err)
		return nil, false
	}
	iv, err := anchor.New(l)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --ancestry: %v\n", err)
		return nil, false
	}
	return iv, true
}

type chainFlags struct {
	width   *int
	network *string
	list    *string
}

func registerChainFlags(fs *flag.FlagSet) chainFlags {
	return chainFlags{
		width:   fs.Int("width", convert.Width32, "Local account width in bytes (32 or 20)"),
		network: fs.String("network", "polkadot", "Local network (any, polkadot, kusama, or 0xhex)"),
		list:    fs.String("schemes", "parent,child,sibling,account32,hashed", "Ordered comma-separated scheme list"),
	}
}

func (c chainFlags) build(errOut io.Writer) (convert.Chain, bool) {
	network, err := loc.ParseNetwork(*c.network)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --network: %v\n", err)
		return nil, false
	}
	chain, err := schemes.Build(*c.list, schemes.Config{Width: *c.width, Network: network})
	if err != nil {
		fmt.Fprintf(errOut, "invalid --schemes: %v\n", err)
		return nil, false
	}
	return chain, true
}
