package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"google.golang.org/grpc"

	"xdao.co/chainreg/grpcreg"
	"xdao.co/chainreg/registrar"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/storage/kvregistry"

	_ "xdao.co/chainreg/storage/localfs"
	_ "xdao.co/chainreg/storage/memkv"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	fs := flag.NewFlagSet("xdao-chainregd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7878", "listen address")
	backend := fs.String("backend", "localfs", "KV backend name")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")
	registrarHex := fs.String("registrar", "", "Registrar principal as 0x-prefixed hex (enables ticket registration)")
	var issuerKeys stringList
	fs.Var(&issuerKeys, "issuer-key", "Allowed ticket issuer key <alg>:<base64> (repeatable)")

	kvregistry.RegisterFlags(fs, kvregistry.UsageDaemon)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range kvregistry.List(kvregistry.UsageDaemon) {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	store, closeFn, err := kvregistry.Open(*backend, kvregistry.UsageDaemon)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if closeFn != nil {
		defer closeFn()
	}

	opts := registry.Options{OpenRegistration: true}
	var authority *registrar.Authority
	if *registrarHex != "" {
		p, err := registry.ParsePrincipal(*registrarHex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --registrar: %v\n", err)
			os.Exit(2)
		}
		opts = registry.Options{Registrar: p}
		if len(issuerKeys) == 0 {
			fmt.Fprintln(os.Stderr, "--registrar requires at least one --issuer-key")
			os.Exit(2)
		}
	}
	reg, err := registry.New(store, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *registrarHex != "" {
		authority, err = registrar.NewAuthority(reg, opts.Registrar, issuerKeys)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcreg.RegisterRegistryServer(s, grpcreg.NewServer(reg, authority))

	fmt.Fprintf(os.Stderr, "xdao-chainregd listening on %s (backend=%s)\n", lis.Addr().String(), *backend)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
