package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"xdao.co/conloc/anchor"
	"xdao.co/conloc/convert"
	"xdao.co/conloc/grpcloc"
	"xdao.co/conloc/loc"
	"xdao.co/conloc/schemes"
)

func main() {
	fs := flag.NewFlagSet("conloc-grpcd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7787", "listen address")
	ancestry := fs.String("ancestry", "here", "descend-only path from the root to the local system")
	width := fs.Int("width", convert.Width32, "local account width in bytes (32 or 20)")
	network := fs.String("network", "polkadot", "local network (any, polkadot, kusama, or 0xhex)")
	schemeList := fs.String("schemes", "parent,child,sibling,account32,hashed", "ordered comma-separated scheme list")
	listSchemes := fs.Bool("list-schemes", false, "List supported schemes and exit")

	_ = fs.Parse(os.Args[1:])
	if *listSchemes {
		for _, s := range schemes.List() {
			if s.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", s.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", s.Name, s.Description)
		}
		return
	}

	ancestryLoc, err := loc.ParseLocation(*ancestry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --ancestry: %v\n", err)
		os.Exit(2)
	}
	inverter, err := anchor.New(ancestryLoc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --ancestry: %v\n", err)
		os.Exit(2)
	}

	localNet, err := loc.ParseNetwork(*network)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --network: %v\n", err)
		os.Exit(2)
	}
	chain, err := schemes.Build(*schemeList, schemes.Config{Width: *width, Network: localNet})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --schemes: %v\n", err)
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcloc.RegisterLocatorServer(s, &grpcloc.Server{Inverter: inverter, Chain: chain})

	fmt.Fprintf(os.Stderr, "conloc-grpcd listening on %s (ancestry=%s schemes=%s)\n",
		lis.Addr().String(), ancestryLoc, *schemeList)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
