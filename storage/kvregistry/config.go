package kvregistry

import (
	"flag"
	"fmt"

	"xdao.co/chainreg/storage"
)

// OpenWithConfig opens the named backend with flag values supplied as a map
// instead of the process command line. Keys mirror the backend's flag names
// (e.g. "localfs-dir").
//
// Backend flags bind package-level variables, so concurrent OpenWithConfig
// calls for the same backend are not safe.
func OpenWithConfig(name string, usage Usage, config map[string]string) (storage.Store, func() error, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("unknown backend %q", name)
	}
	if !b.Usage.allows(usage) {
		return nil, nil, fmt.Errorf("backend %q not supported in this binary", name)
	}

	fs := flag.NewFlagSet("kvregistry:"+name, flag.ContinueOnError)
	b.RegisterFlags(fs)
	for k, v := range config {
		if err := fs.Set(k, v); err != nil {
			return nil, nil, fmt.Errorf("backend %q: config key %q: %w", name, k, err)
		}
	}
	return b.Open()
}
