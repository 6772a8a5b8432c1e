package localfs

import (
	"flag"
	"fmt"

	"xdao.co/chainreg/storage"
	"xdao.co/chainreg/storage/kvregistry"
)

var flagLocalDir string

func init() {
	kvregistry.MustRegister(kvregistry.Backend{
		Name:        "localfs",
		Description: "Local filesystem store (directory)",
		Usage:       kvregistry.UsageCLI | kvregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagLocalDir, "localfs-dir", "", "LocalFS store directory (for --backend=localfs)")
		},
		Open: func() (storage.Store, func() error, error) {
			if flagLocalDir == "" {
				return nil, nil, fmt.Errorf("missing --localfs-dir")
			}
			s, err := Open(flagLocalDir)
			return s, nil, err
		},
	})
}
