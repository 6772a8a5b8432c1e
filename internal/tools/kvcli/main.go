package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"xdao.co/chainreg/storage"
	"xdao.co/chainreg/storage/kvregistry"

	_ "xdao.co/chainreg/storage/localfs"
	_ "xdao.co/chainreg/storage/memkv"
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
	case "get":
		return cmdGet(args[1:], out, errOut)
	case "put":
		return cmdPut(args[1:], out, errOut)
	case "del":
		return cmdDel(args[1:], out, errOut)
	case "keys":
		return cmdKeys(args[1:], out, errOut)
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
	fmt.Fprintln(w, "kvcli: minimal KV store tool for registry debugging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  kvcli get --backend localfs --localfs-dir <dir> --key <hex-or-string>")
	fmt.Fprintln(w, "  kvcli put --backend localfs --localfs-dir <dir> --key <hex-or-string> --value <hex>")
	fmt.Fprintln(w, "  kvcli del --backend localfs --localfs-dir <dir> --key <hex-or-string>")
	fmt.Fprintln(w, "  kvcli keys --backend localfs --localfs-dir <dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - keys starting with 0x are parsed as hex; anything else is taken verbatim")
	fmt.Fprintln(w, "  - values print as hex; registry keys are prefixed ASCII (own/, cid/, text/, ...)")
}

type commonFlags struct {
	backend      string
	listBackends bool
}

func (c *commonFlags) add(fs *flag.FlagSet) {
	fs.StringVar(&c.backend, "backend", "localfs", "KV backend name")
	fs.BoolVar(&c.listBackends, "list-backends", false, "List supported backends and exit")
	kvregistry.RegisterFlags(fs, kvregistry.UsageCLI)
}

func (c *commonFlags) open() (storage.Store, func() error, error) {
	return kvregistry.Open(c.backend, kvregistry.UsageCLI)
}

func printBackends(w io.Writer) {
	for _, b := range kvregistry.List(kvregistry.UsageCLI) {
		if b.Description == "" {
			_, _ = fmt.Fprintf(w, "%s\n", b.Name)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", b.Name, b.Description)
	}
}

func parseKey(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") {
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))
	}
	return []byte(s), nil
}

func cmdGet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.add(fs)

	var keyStr string
	fs.StringVar(&keyStr, "key", "", "Store key")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if common.listBackends {
		printBackends(out)
		return 0
	}
	if keyStr == "" {
		fmt.Fprintln(errOut, "missing --key")
		return 2
	}
	key, err := parseKey(keyStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --key: %v\n", err)
		return 2
	}

	store, closeFn, err := common.open()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	v, err := store.Get(key)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	_, _ = fmt.Fprintln(out, hex.EncodeToString(v))
	return 0
}

func cmdPut(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.add(fs)

	var keyStr string
	var valueHex string
	fs.StringVar(&keyStr, "key", "", "Store key")
	fs.StringVar(&valueHex, "value", "", "Value as hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if common.listBackends {
		printBackends(out)
		return 0
	}
	if keyStr == "" {
		fmt.Fprintln(errOut, "missing --key")
		return 2
	}
	key, err := parseKey(keyStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --key: %v\n", err)
		return 2
	}
	value, err := hex.DecodeString(strings.TrimPrefix(valueHex, "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid --value: %v\n", err)
		return 2
	}

	store, closeFn, err := common.open()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	var batch storage.Batch
	batch.Put(key, value)
	if err := store.Apply(batch); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdDel(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("del", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.add(fs)

	var keyStr string
	fs.StringVar(&keyStr, "key", "", "Store key")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if common.listBackends {
		printBackends(out)
		return 0
	}
	if keyStr == "" {
		fmt.Fprintln(errOut, "missing --key")
		return 2
	}
	key, err := parseKey(keyStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --key: %v\n", err)
		return 2
	}

	store, closeFn, err := common.open()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	var batch storage.Batch
	batch.Del(key)
	if err := store.Apply(batch); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdKeys(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.add(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if common.listBackends {
		printBackends(out)
		return 0
	}

	store, closeFn, err := common.open()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	keys, err := store.Keys()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	for _, k := range keys {
		_, _ = fmt.Fprintln(out, hex.EncodeToString(k))
	}
	return 0
}
