package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/glacierdb/glacier/errors"
)

// Save writes the configuration to the given path as TOML.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("nil config")
	}

	out := map[string]any{
		"catalog": map[string]any{
			"path":           cfg.Catalog.Path,
			"table":          cfg.Catalog.Table,
			"default_branch": cfg.Catalog.DefaultBranch,
		},
		"log": map[string]any{
			"json": cfg.Log.JSON,
		},
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
