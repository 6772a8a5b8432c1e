package memkv

import (
	"flag"

	"xdao.co/chainreg/storage"
	"xdao.co/chainreg/storage/kvregistry"
)

func init() {
	kvregistry.MustRegister(kvregistry.Backend{
		Name:          "mem",
		Description:   "In-memory store (state is lost on exit)",
		Usage:         kvregistry.UsageCLI | kvregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (storage.Store, func() error, error) {
			return New(), nil, nil
		},
	})
}
