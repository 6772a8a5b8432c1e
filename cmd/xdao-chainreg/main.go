package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"xdao.co/chainreg/abi"
	"xdao.co/chainreg/cidutil"
	"xdao.co/chainreg/grpcreg"
	"xdao.co/chainreg/internal/hexutil"
	"xdao.co/chainreg/keys"
	"xdao.co/chainreg/model"
	"xdao.co/chainreg/namecodec"
	"xdao.co/chainreg/registrar"
	"xdao.co/chainreg/registry"
	"xdao.co/chainreg/resolver"
	"xdao.co/chainreg/storage/bundle"
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
	case "name":
		return cmdName(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "ticket":
		return cmdTicket(args[1:], out, errOut)
	case "register":
		return cmdRegister(args[1:], out, errOut)
	case "set-owner":
		return cmdSetOwner(args[1:], out, errOut)
	case "set-record":
		return cmdSetRecordChain(args[1:], out, errOut)
	case "set-operator":
		return cmdSetOperator(args[1:], out, errOut)
	case "set-addr":
		return cmdSetAddr(args[1:], out, errOut)
	case "set-text":
		return cmdSetText(args[1:], out, errOut)
	case "set-data":
		return cmdSetData(args[1:], out, errOut)
	case "set-contenthash":
		return cmdSetContentHash(args[1:], out, errOut)
	case "resolve":
		return cmdResolve(args[1:], out, errOut)
	case "reverse":
		return cmdReverse(args[1:], out, errOut)
	case "chain-id":
		return cmdChainID(args[1:], out, errOut)
	case "chain-name":
		return cmdChainName(args[1:], out, errOut)
	case "info":
		return cmdInfo(args[1:], out, errOut)
	case "snapshot":
		return cmdSnapshot(args[1:], out, errOut)
	case "remote":
		return cmdRemote(args[1:], out, errOut)
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
	fmt.Fprintln(w, "xdao-chainreg: chain-label registry and resolver CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-chainreg name encode <dotted-name>")
	fmt.Fprintln(w, "  xdao-chainreg name decode <hex-wire-name>")
	fmt.Fprintln(w, "  xdao-chainreg name hash <label>")
	fmt.Fprintln(w, "  xdao-chainreg name namehash <dotted-name>")
	fmt.Fprintln(w, "  xdao-chainreg key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  xdao-chainreg key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  xdao-chainreg key list")
	fmt.Fprintln(w, "  xdao-chainreg key export --name <name> [--role <role>]")
	fmt.Fprintln(w, "  xdao-chainreg ticket sign --label <l> --owner <0xhex> --chain-id <hex> (--seed-hex <64hex> | --signer <name> [--signer-role <role>] | --key-file <path>)")
	fmt.Fprintln(w, "  xdao-chainreg ticket verify <ticket.json>")
	fmt.Fprintln(w, "  xdao-chainreg register --label <l> --owner <0xhex> --chain-id <hex> --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-owner --label <l> --new-owner <0xhex> --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-operator --operator <0xhex> --as <0xhex> [--revoke] [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-record --label <l> --chain-id <hex> [--chain-name <n>] --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-addr --label <l> --value <hex> [--coin <n>] --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-text --label <l> --key <k> --value <v> --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-data --label <l> --key <k> --value <hex> --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg set-contenthash --label <l> (--cid <cid> | --value <hex> | --from-file <path>) --as <0xhex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg resolve --name <dotted> (--addr [--coin <n>] | --contenthash | --text <k> | --data <k>) [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg reverse --chain-id <hex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg chain-id --label <l> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg chain-name --chain-id <hex> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg info --label <l> [--text <k> ...] [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg snapshot export --out <file> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg snapshot import --in <file> [store flags]")
	fmt.Fprintln(w, "  xdao-chainreg remote <resolve|register|chain-id|chain-name> --target <host:port> ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - store flags: --backend=localfs --localfs-dir <dir> (or --backend=mem)")
	fmt.Fprintln(w, "  - principals are 20-byte values; shorter hex right-aligns (0xaa == 0x00..aa)")
	fmt.Fprintln(w, "  - chain identifiers are hex; an odd nibble count pads a leading zero")
	fmt.Fprintln(w, "  - keys live under ~/.xdao/chainreg/keys/<name> (0600 seed files)")
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// addStoreFlags wires the shared KV-backend selection flags into fs.
func addStoreFlags(fs *flag.FlagSet) *string {
	backend := fs.String("backend", "localfs", "KV backend name")
	kvregistry.RegisterFlags(fs, kvregistry.UsageCLI)
	return backend
}

func openRegistry(backend string, opts registry.Options) (*registry.Registry, func() error, error) {
	store, closeFn, err := kvregistry.Open(backend, kvregistry.UsageCLI)
	if err != nil {
		return nil, nil, err
	}
	reg, err := registry.New(store, opts)
	if err != nil {
		if closeFn != nil {
			_ = closeFn()
		}
		return nil, nil, err
	}
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return reg, closeFn, nil
}

// readOnlyOptions suits commands that never register labels.
func readOnlyOptions() registry.Options {
	return registry.Options{OpenRegistration: true}
}

func parsePrincipalFlag(name, value string, errOut io.Writer) (registry.Principal, bool) {
	if value == "" {
		fmt.Fprintf(errOut, "missing --%s\n", name)
		return registry.Nobody, false
	}
	p, err := registry.ParsePrincipal(value)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --%s: %v\n", name, err)
		return registry.Nobody, false
	}
	return p, true
}

func parseChainIDFlag(value string, errOut io.Writer) ([]byte, bool) {
	if value == "" {
		fmt.Fprintln(errOut, "missing --chain-id")
		return nil, false
	}
	id, err := hexutil.ParseRightAligned(strings.TrimPrefix(value, "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid --chain-id: %v\n", err)
		return nil, false
	}
	return id, true
}

func cmdName(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-chainreg name <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: encode, decode, hash, namehash")
		return 2
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("name "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(rest); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(errOut, "usage: xdao-chainreg name %s <arg>\n", sub)
		return 2
	}
	arg := fs.Arg(0)

	switch sub {
	case "encode":
		wire, err := namecodec.Encode(arg)
		if err != nil {
			fmt.Fprintf(errOut, "encode: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, hex.EncodeToString(wire))
		return 0
	case "decode":
		wire, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			fmt.Fprintf(errOut, "invalid hex: %v\n", err)
			return 2
		}
		name, err := namecodec.Decode(wire)
		if err != nil {
			fmt.Fprintf(errOut, "decode: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, name)
		return 0
	case "hash":
		h := namecodec.LabelHash([]byte(arg))
		_, _ = fmt.Fprintln(out, hex.EncodeToString(h[:]))
		return 0
	case "namehash":
		wire, err := namecodec.Encode(arg)
		if err != nil {
			fmt.Fprintf(errOut, "encode: %v\n", err)
			return 1
		}
		h, err := namecodec.Namehash(wire, 0)
		if err != nil {
			fmt.Fprintf(errOut, "namehash: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, hex.EncodeToString(h[:]))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown name subcommand: %s\n", sub)
		return 2
	}
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printKeyUsage(errOut)
		return 2
	}
	switch args[0] {
	case "init":
		return cmdKeyInit(args[1:], out, errOut)
	case "derive":
		return cmdKeyDerive(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	case "help", "-h", "--help":
		printKeyUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n\n", args[0])
		printKeyUsage(errOut)
		return 2
	}
}

func printKeyUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-chainreg key: minimal local key management (KMS-lite)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-chainreg key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  xdao-chainreg key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  xdao-chainreg key list")
	fmt.Fprintln(w, "  xdao-chainreg key export --name <name> [--role <role>]")
}

func cmdKeyInit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key init", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var seedHex string
	var force bool

	fs.StringVar(&name, "name", "", "Key name (directory under ~/.xdao/chainreg/keys)")
	fs.StringVar(&seedHex, "seed-hex", "", "Optional ed25519 seed as 64 hex chars (for reproducible demos)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}

	var seed []byte
	if seedHex != "" {
		var derr error
		seed, derr = keys.ParseSeedHex(seedHex)
		if derr != nil {
			fmt.Fprintf(errOut, "invalid --seed-hex: %v\n", derr)
			return 2
		}
	} else {
		seed = make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			fmt.Fprintf(errOut, "rand: %v\n", err)
			return 1
		}
	}

	issuerKey, rootPath, err := ks.InitializeRootKey(name, seed, force)
	if err != nil {
		fmt.Fprintf(errOut, "write key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created root key: %s\n", issuerKey)
	fmt.Fprintf(out, "Stored at: %s\n", rootPath)
	return 0
}

func cmdKeyDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var from string
	var role string
	var force bool

	fs.StringVar(&from, "from", "", "Root key name")
	fs.StringVar(&role, "role", "", "Role identifier (e.g. registrar, operator)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if from == "" {
		fmt.Fprintln(errOut, "missing --from")
		return 2
	}
	if role == "" {
		fmt.Fprintln(errOut, "missing --role")
		return 2
	}
	if err := keys.CheckKeyName(from); err != nil {
		fmt.Fprintf(errOut, "invalid --from: %v\n", err)
		return 2
	}
	if err := keys.CheckRole(role); err != nil {
		fmt.Fprintf(errOut, "invalid --role: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	issuerKey, rolePath, err := ks.DeriveKeyFromRole(from, role, force)
	if err != nil {
		fmt.Fprintf(errOut, "derive role key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created role key: %s\n", issuerKey)
	fmt.Fprintf(out, "Stored at: %s\n", rolePath)
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	entries, err := ks.ListKeys()
	if err != nil {
		fmt.Fprintf(errOut, "list keys: %v\n", err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s\n", e.Identifier)
		for _, r := range e.Permissions {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var role string

	fs.StringVar(&name, "name", "", "Key name")
	fs.StringVar(&role, "role", "", "Optional role (if set, exports derived role key)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	if role != "" {
		if err := keys.CheckRole(role); err != nil {
			fmt.Fprintf(errOut, "invalid --role: %v\n", err)
			return 2
		}
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	issuerKey, err := ks.ExportKey(name, role)
	if err != nil {
		fmt.Fprintf(errOut, "export key: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, issuerKey)
	return 0
}

func cmdTicket(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-chainreg ticket <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: sign, verify")
		return 2
	}
	switch args[0] {
	case "sign":
		return cmdTicketSign(args[1:], out, errOut)
	case "verify":
		return cmdTicketVerify(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown ticket subcommand: %s\n", args[0])
		return 2
	}
}

func cmdTicketSign(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("ticket sign", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var ownerHex string
	var chainIDHex string
	var seedHex string
	var signerName string
	var signerRole string
	var keyFile string

	fs.StringVar(&label, "label", "", "Label to register")
	fs.StringVar(&ownerHex, "owner", "", "Initial owner principal as 0x-prefixed hex")
	fs.StringVar(&chainIDHex, "chain-id", "", "Chain identifier as hex")
	fs.StringVar(&seedHex, "seed-hex", "", "ed25519 seed as 64 hex chars")
	fs.StringVar(&signerName, "signer", "", "Use a stored key by name (from 'xdao-chainreg key init')")
	fs.StringVar(&signerRole, "signer-role", "", "When using --signer, optionally use a derived role key")
	fs.StringVar(&keyFile, "key-file", "", "Path to a seed file (hex) created by 'xdao-chainreg key init/derive'")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}
	owner, ok := parsePrincipalFlag("owner", ownerHex, errOut)
	if !ok {
		return 2
	}
	chainID, ok := parseChainIDFlag(chainIDHex, errOut)
	if !ok {
		return 2
	}
	if seedHex == "" && signerName == "" && keyFile == "" {
		fmt.Fprintln(errOut, "missing signer: use --seed-hex, --signer, or --key-file")
		return 2
	}
	if seedHex != "" && (signerName != "" || keyFile != "") {
		fmt.Fprintln(errOut, "conflicting signer flags: --seed-hex cannot be combined with --signer or --key-file")
		return 2
	}
	if signerName != "" && keyFile != "" {
		fmt.Fprintln(errOut, "conflicting signer flags: --signer cannot be combined with --key-file")
		return 2
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	seed, err := ks.LoadSeed(seedHex, signerName, signerRole, keyFile)
	if err != nil {
		fmt.Fprintf(errOut, "invalid signer: %v\n", err)
		return 2
	}
	priv := ed25519.NewKeyFromSeed(seed)
	fmt.Fprintf(errOut, "Issuer-Key: %s\n", keys.GenerateIssuerKeyFromSeed(seed))

	st, err := registrar.SignEd25519(registrar.Ticket{Label: label, Owner: owner, ChainID: chainID}, priv)
	if err != nil {
		fmt.Fprintf(errOut, "sign ticket: %v\n", err)
		return 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "encode ticket: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, string(b))
	return 0
}

func cmdTicketVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("ticket verify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-chainreg ticket verify <ticket.json>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read ticket: %v\n", err)
		return 1
	}
	st, err := registrar.DecodeSignedTicket(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid ticket: %v\n", err)
		return 1
	}
	t, err := st.Verify()
	if err != nil {
		fmt.Fprintf(errOut, "verify: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Label:    %s\n", t.Label)
	fmt.Fprintf(out, "Owner:    %s\n", t.Owner)
	fmt.Fprintf(out, "Chain-ID: %s\n", hex.EncodeToString(t.ChainID))
	fmt.Fprintf(out, "Issuer:   %s\n", st.IssuerKey)
	return 0
}

func cmdRegister(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var ownerHex string
	var chainIDHex string
	var asHex string
	var open bool
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label to register")
	fs.StringVar(&ownerHex, "owner", "", "Initial owner principal as 0x-prefixed hex")
	fs.StringVar(&chainIDHex, "chain-id", "", "Chain identifier as hex")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")
	fs.BoolVar(&open, "open", false, "Permissionless mode: any caller may register")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}
	owner, ok := parsePrincipalFlag("owner", ownerHex, errOut)
	if !ok {
		return 2
	}
	chainID, ok := parseChainIDFlag(chainIDHex, errOut)
	if !ok {
		return 2
	}
	caller, ok := parsePrincipalFlag("as", asHex, errOut)
	if !ok {
		return 2
	}

	opts := registry.Options{OpenRegistration: open}
	if !open {
		// Single-operator store: the caller is its own registrar.
		opts = registry.Options{Registrar: caller}
	}
	reg, closeFn, err := openRegistry(*backend, opts)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	h, err := reg.Register(label, owner, chainID, caller)
	if err != nil {
		fmt.Fprintf(errOut, "register: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Label-Hash: %s\n", hex.EncodeToString(h[:]))
	return 0
}

func cmdSetOwner(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-owner", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var newOwnerHex string
	var asHex string
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label")
	fs.StringVar(&newOwnerHex, "new-owner", "", "New owner principal as 0x-prefixed hex (0x0 relinquishes)")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}
	newOwner, ok := parsePrincipalFlag("new-owner", newOwnerHex, errOut)
	if !ok {
		return 2
	}
	caller, ok := parsePrincipalFlag("as", asHex, errOut)
	if !ok {
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	if err := reg.SetOwner(namecodec.LabelHash([]byte(label)), newOwner, caller); err != nil {
		fmt.Fprintf(errOut, "set-owner: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdSetOperator(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-operator", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var operatorHex string
	var asHex string
	var revoke bool
	backend := addStoreFlags(fs)

	fs.StringVar(&operatorHex, "operator", "", "Operator principal as 0x-prefixed hex")
	fs.StringVar(&asHex, "as", "", "Granting owner principal as 0x-prefixed hex")
	fs.BoolVar(&revoke, "revoke", false, "Revoke the grant instead of creating it")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	operator, ok := parsePrincipalFlag("operator", operatorHex, errOut)
	if !ok {
		return 2
	}
	caller, ok := parsePrincipalFlag("as", asHex, errOut)
	if !ok {
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	if err := reg.SetOperator(caller, operator, !revoke); err != nil {
		fmt.Fprintf(errOut, "set-operator: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdSetRecordChain(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-record", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var chainIDHex string
	var chainName string
	var asHex string
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label")
	fs.StringVar(&chainIDHex, "chain-id", "", "New chain identifier as hex")
	fs.StringVar(&chainName, "chain-name", "", "Chain name for the reverse record (defaults to --label)")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	chainID, ok := parseChainIDFlag(chainIDHex, errOut)
	if !ok {
		return 2
	}
	if chainName == "" {
		chainName = label
	}
	code := setRecord(*backend, label, asHex, errOut, func(reg *registry.Registry, h namecodec.Node, caller registry.Principal) error {
		return reg.SetRecord(h, chainID, chainName, caller)
	})
	if code == 0 {
		_, _ = fmt.Fprintln(out, "OK")
	}
	return code
}

// setRecord factors the shared label/caller plumbing of the record commands.
func setRecord(backend, label, asHex string, errOut io.Writer, apply func(*registry.Registry, namecodec.Node, registry.Principal) error) int {
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}
	caller, ok := parsePrincipalFlag("as", asHex, errOut)
	if !ok {
		return 2
	}
	reg, closeFn, err := openRegistry(backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	if err := apply(reg, namecodec.LabelHash([]byte(label)), caller); err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	return 0
}

func cmdSetAddr(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-addr", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var valueHex string
	var coinType uint64
	var asHex string
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label")
	fs.StringVar(&valueHex, "value", "", "Address bytes as hex")
	fs.Uint64Var(&coinType, "coin", registry.DefaultCoinType, "Coin type")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	value, err := hex.DecodeString(strings.TrimPrefix(valueHex, "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid --value: %v\n", err)
		return 2
	}
	code := setRecord(*backend, label, asHex, errOut, func(reg *registry.Registry, h namecodec.Node, caller registry.Principal) error {
		return reg.SetAddrForCoin(h, coinType, value, caller)
	})
	if code == 0 {
		_, _ = fmt.Fprintln(out, "OK")
	}
	return code
}

func cmdSetText(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-text", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var key string
	var value string
	var asHex string
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label")
	fs.StringVar(&key, "key", "", "Text record key")
	fs.StringVar(&value, "value", "", "Text record value")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if key == "" {
		fmt.Fprintln(errOut, "missing --key")
		return 2
	}
	code := setRecord(*backend, label, asHex, errOut, func(reg *registry.Registry, h namecodec.Node, caller registry.Principal) error {
		return reg.SetText(h, key, value, caller)
	})
	if code == 0 {
		_, _ = fmt.Fprintln(out, "OK")
	}
	return code
}

func cmdSetData(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-data", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var key string
	var valueHex string
	var asHex string
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label")
	fs.StringVar(&key, "key", "", "Data record key")
	fs.StringVar(&valueHex, "value", "", "Data record value as hex")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if key == "" {
		fmt.Fprintln(errOut, "missing --key")
		return 2
	}
	value, err := hex.DecodeString(strings.TrimPrefix(valueHex, "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid --value: %v\n", err)
		return 2
	}
	code := setRecord(*backend, label, asHex, errOut, func(reg *registry.Registry, h namecodec.Node, caller registry.Principal) error {
		return reg.SetData(h, []byte(key), value, caller)
	})
	if code == 0 {
		_, _ = fmt.Fprintln(out, "OK")
	}
	return code
}

func cmdSetContentHash(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set-contenthash", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var cidStr string
	var valueHex string
	var fromFile string
	var asHex string
	backend := addStoreFlags(fs)

	fs.StringVar(&label, "label", "", "Label")
	fs.StringVar(&cidStr, "cid", "", "Content hash as a CID string")
	fs.StringVar(&valueHex, "value", "", "Content hash as raw hex (alternative to --cid)")
	fs.StringVar(&fromFile, "from-file", "", "Derive the CID from a file's contents (alternative to --cid)")
	fs.StringVar(&asHex, "as", "", "Caller principal as 0x-prefixed hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	selected := 0
	for _, s := range []string{cidStr, valueHex, fromFile} {
		if s != "" {
			selected++
		}
	}
	if selected != 1 {
		fmt.Fprintln(errOut, "exactly one of --cid, --value or --from-file is required")
		return 2
	}
	var value []byte
	var err error
	switch {
	case cidStr != "":
		value, err = cidutil.ContentHashRecord(cidStr)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --cid: %v\n", err)
			return 2
		}
	case fromFile != "":
		data, readErr := os.ReadFile(fromFile)
		if readErr != nil {
			fmt.Fprintf(errOut, "read %s: %v\n", fromFile, readErr)
			return 2
		}
		id, cidErr := cidutil.CIDv1RawSHA256CID(data)
		if cidErr != nil {
			fmt.Fprintf(errOut, "derive cid: %v\n", cidErr)
			return 2
		}
		value = id.Bytes()
	default:
		value, err = hex.DecodeString(strings.TrimPrefix(valueHex, "0x"))
		if err != nil {
			fmt.Fprintf(errOut, "invalid --value: %v\n", err)
			return 2
		}
	}
	code := setRecord(*backend, label, asHex, errOut, func(reg *registry.Registry, h namecodec.Node, caller registry.Principal) error {
		return reg.SetContentHash(h, value, caller)
	})
	if code == 0 {
		_, _ = fmt.Fprintln(out, "OK")
	}
	return code
}

// buildQuery maps the resolve command's flags onto one method payload.
func buildQuery(node namecodec.Node, wantAddr bool, coinSet bool, coinType uint64, wantContentHash bool, textKey, dataKey string) ([]byte, string, error) {
	selected := 0
	if wantAddr {
		selected++
	}
	if wantContentHash {
		selected++
	}
	if textKey != "" {
		selected++
	}
	if dataKey != "" {
		selected++
	}
	if selected != 1 {
		return nil, "", fmt.Errorf("exactly one of --addr, --contenthash, --text, --data is required")
	}
	switch {
	case wantAddr && !coinSet:
		return resolver.NewAddrQuery(node), "addr", nil
	case wantAddr:
		return resolver.NewAddrCoinQuery(node, coinType), "addr-coin", nil
	case wantContentHash:
		return resolver.NewContentHashQuery(node), "contenthash", nil
	case textKey != "":
		return resolver.NewTextQuery(node, textKey), "text", nil
	default:
		return resolver.NewDataQuery(node, []byte(dataKey)), "data", nil
	}
}

func cmdResolve(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var wantAddr bool
	var coinType uint64
	var wantContentHash bool
	var textKey string
	var dataKey string
	backend := addStoreFlags(fs)

	fs.StringVar(&name, "name", "", "Dotted name; the first label selects the chain")
	fs.BoolVar(&wantAddr, "addr", false, "Query the address record")
	fs.Uint64Var(&coinType, "coin", 0, "Coin type for --addr (omit for the 20-byte default form)")
	fs.BoolVar(&wantContentHash, "contenthash", false, "Query the content hash record")
	fs.StringVar(&textKey, "text", "", "Query a text record by key")
	fs.StringVar(&dataKey, "data", "", "Query a data record by key")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	coinSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "coin" {
			coinSet = true
		}
	})

	wire, err := namecodec.Encode(name)
	if err != nil {
		fmt.Fprintf(errOut, "encode name: %v\n", err)
		return 2
	}
	node, _, _, _, err := namecodec.ReadLabel(wire, 0, true)
	if err != nil {
		fmt.Fprintf(errOut, "name: %v\n", err)
		return 2
	}
	query, kind, err := buildQuery(node, wantAddr, coinSet, coinType, wantContentHash, textKey, dataKey)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	answer, err := resolver.New(reg).Resolve(wire, query)
	if err != nil {
		fmt.Fprintf(errOut, "resolve: %v\n", err)
		return 1
	}
	return printAnswer(out, errOut, kind, answer)
}

func printAnswer(out, errOut io.Writer, kind string, answer []byte) int {
	switch kind {
	case "addr":
		a, err := abi.NewReader(answer).Address()
		if err != nil {
			fmt.Fprintf(errOut, "decode answer: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, "0x"+hex.EncodeToString(a[:]))
	case "text":
		s, err := abi.DecodeString(answer)
		if err != nil {
			fmt.Fprintf(errOut, "decode answer: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, s)
	default:
		b, err := abi.DecodeBytes(answer)
		if err != nil {
			fmt.Fprintf(errOut, "decode answer: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, hex.EncodeToString(b))
	}
	return 0
}

func cmdReverse(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("reverse", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var chainIDHex string
	backend := addStoreFlags(fs)
	fs.StringVar(&chainIDHex, "chain-id", "", "Chain identifier as hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	chainID, ok := parseChainIDFlag(chainIDHex, errOut)
	if !ok {
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	wire, err := namecodec.Encode("reverse")
	if err != nil {
		fmt.Fprintf(errOut, "encode name: %v\n", err)
		return 1
	}
	node := namecodec.LabelHash([]byte("reverse"))
	key := resolver.KeyChainNamePrefix + hex.EncodeToString(chainID)
	answer, err := resolver.NewReverse(reg).Resolve(wire, resolver.NewTextQuery(node, key))
	if err != nil {
		fmt.Fprintf(errOut, "reverse: %v\n", err)
		return 1
	}
	name, err := abi.DecodeString(answer)
	if err != nil {
		fmt.Fprintf(errOut, "decode answer: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, name)
	return 0
}

func cmdChainID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("chain-id", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	backend := addStoreFlags(fs)
	fs.StringVar(&label, "label", "", "Label")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	id, err := reg.ChainID(namecodec.LabelHash([]byte(label)))
	if err != nil {
		fmt.Fprintf(errOut, "chain-id: %v\n", err)
		return 1
	}
	if id == nil {
		fmt.Fprintf(errOut, "label not registered: %s\n", label)
		return 1
	}
	_, _ = fmt.Fprintln(out, hex.EncodeToString(id))
	return 0
}

func cmdChainName(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("chain-name", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var chainIDHex string
	backend := addStoreFlags(fs)
	fs.StringVar(&chainIDHex, "chain-id", "", "Chain identifier as hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	chainID, ok := parseChainIDFlag(chainIDHex, errOut)
	if !ok {
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	name, err := reg.ChainName(chainID)
	if err != nil {
		fmt.Fprintf(errOut, "chain-name: %v\n", err)
		return 1
	}
	if name == "" {
		fmt.Fprintf(errOut, "unknown chain identifier: %s\n", hex.EncodeToString(chainID))
		return 1
	}
	_, _ = fmt.Fprintln(out, name)
	return 0
}

func cmdInfo(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var label string
	var textKeys stringList
	backend := addStoreFlags(fs)
	fs.StringVar(&label, "label", "", "Label")
	fs.Var(&textKeys, "text", "Text record key to include (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if label == "" {
		fmt.Fprintln(errOut, "missing --label")
		return 2
	}

	reg, closeFn, err := openRegistry(*backend, readOnlyOptions())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer closeFn()

	info, err := model.ChainInfoFromRegistry(reg, label, textKeys)
	if err != nil {
		fmt.Fprintf(errOut, "info: %v\n", err)
		return 1
	}
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, string(b))
	return 0
}

func cmdSnapshot(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-chainreg snapshot <export|import> ...")
		return 2
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("snapshot "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)

	var outPath string
	var inPath string
	backend := addStoreFlags(fs)
	fs.StringVar(&outPath, "out", "", "Snapshot file to write (export)")
	fs.StringVar(&inPath, "in", "", "Snapshot file to read (import)")

	if err := fs.Parse(rest); err != nil {
		return 2
	}

	store, closeFn, err := kvregistry.Open(*backend, kvregistry.UsageCLI)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if closeFn != nil {
		defer closeFn()
	}

	switch sub {
	case "export":
		if outPath == "" {
			fmt.Fprintln(errOut, "missing --out")
			return 2
		}
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(errOut, "create %s: %v\n", outPath, err)
			return 1
		}
		if err := bundle.Export(f, store); err != nil {
			_ = f.Close()
			fmt.Fprintf(errOut, "export: %v\n", err)
			return 1
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(errOut, "close %s: %v\n", outPath, err)
			return 1
		}
		_, _ = fmt.Fprintln(out, "OK")
		return 0
	case "import":
		if inPath == "" {
			fmt.Fprintln(errOut, "missing --in")
			return 2
		}
		f, err := os.Open(inPath)
		if err != nil {
			fmt.Fprintf(errOut, "open %s: %v\n", inPath, err)
			return 1
		}
		defer f.Close()
		n, err := bundle.Import(f, store)
		if err != nil {
			fmt.Fprintf(errOut, "import: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "Imported %d entries\n", n)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown snapshot subcommand: %s\n", sub)
		return 2
	}
}

func cmdRemote(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-chainreg remote <resolve|register|chain-id|chain-name> --target <host:port> ...")
		return 2
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("remote "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)

	var target string
	var dialTimeout time.Duration
	var rpcTimeout time.Duration
	fs.StringVar(&target, "target", "", "gRPC target host:port")
	fs.DurationVar(&dialTimeout, "dial-timeout", 5*time.Second, "Dial timeout")
	fs.DurationVar(&rpcTimeout, "timeout", 10*time.Second, "Per-RPC timeout")

	var label string
	var chainIDHex string
	var ticketPath string
	var name string
	var wantAddr bool
	var coinType uint64
	var wantContentHash bool
	var textKey string
	var dataKey string
	switch sub {
	case "chain-id":
		fs.StringVar(&label, "label", "", "Label")
	case "chain-name":
		fs.StringVar(&chainIDHex, "chain-id", "", "Chain identifier as hex")
	case "register":
		fs.StringVar(&ticketPath, "ticket", "", "Signed ticket JSON file")
	case "resolve":
		fs.StringVar(&name, "name", "", "Dotted name; the first label selects the chain")
		fs.BoolVar(&wantAddr, "addr", false, "Query the address record")
		fs.Uint64Var(&coinType, "coin", 0, "Coin type for --addr (omit for the 20-byte default form)")
		fs.BoolVar(&wantContentHash, "contenthash", false, "Query the content hash record")
		fs.StringVar(&textKey, "text", "", "Query a text record by key")
		fs.StringVar(&dataKey, "data", "", "Query a data record by key")
	default:
		fmt.Fprintf(errOut, "unknown remote subcommand: %s\n", sub)
		return 2
	}

	if err := fs.Parse(rest); err != nil {
		return 2
	}
	if target == "" {
		fmt.Fprintln(errOut, "missing --target")
		return 2
	}

	client, err := grpcreg.Dial(target, grpcreg.DialOptions{Timeout: dialTimeout})
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", target, err)
		return 1
	}
	defer client.Close()
	client.Timeout = rpcTimeout

	switch sub {
	case "chain-id":
		if label == "" {
			fmt.Fprintln(errOut, "missing --label")
			return 2
		}
		id, err := client.ChainID(label)
		if err != nil {
			fmt.Fprintf(errOut, "chain-id: %v\n", err)
			return 1
		}
		if len(id) == 0 {
			fmt.Fprintf(errOut, "label not registered: %s\n", label)
			return 1
		}
		_, _ = fmt.Fprintln(out, hex.EncodeToString(id))
		return 0
	case "chain-name":
		chainID, ok := parseChainIDFlag(chainIDHex, errOut)
		if !ok {
			return 2
		}
		name, err := client.ChainName(chainID)
		if err != nil {
			fmt.Fprintf(errOut, "chain-name: %v\n", err)
			return 1
		}
		if name == "" {
			fmt.Fprintf(errOut, "unknown chain identifier: %s\n", hex.EncodeToString(chainID))
			return 1
		}
		_, _ = fmt.Fprintln(out, name)
		return 0
	case "register":
		if ticketPath == "" {
			fmt.Fprintln(errOut, "missing --ticket")
			return 2
		}
		b, err := os.ReadFile(ticketPath)
		if err != nil {
			fmt.Fprintf(errOut, "read ticket: %v\n", err)
			return 1
		}
		st, err := registrar.DecodeSignedTicket(b)
		if err != nil {
			fmt.Fprintf(errOut, "invalid ticket: %v\n", err)
			return 1
		}
		h, err := client.Register(st)
		if err != nil {
			fmt.Fprintf(errOut, "register: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "Label-Hash: %s\n", hex.EncodeToString(h[:]))
		return 0
	default: // resolve
		if name == "" {
			fmt.Fprintln(errOut, "missing --name")
			return 2
		}
		coinSet := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "coin" {
				coinSet = true
			}
		})
		wire, err := namecodec.Encode(name)
		if err != nil {
			fmt.Fprintf(errOut, "encode name: %v\n", err)
			return 2
		}
		node, _, _, _, err := namecodec.ReadLabel(wire, 0, true)
		if err != nil {
			fmt.Fprintf(errOut, "name: %v\n", err)
			return 2
		}
		query, kind, err := buildQuery(node, wantAddr, coinSet, coinType, wantContentHash, textKey, dataKey)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		answer, err := client.Resolve(wire, query)
		if err != nil {
			fmt.Fprintf(errOut, "resolve: %v\n", err)
			return 1
		}
		return printAnswer(out, errOut, kind, answer)
	}
}
