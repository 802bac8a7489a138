package config

import (
	"github.com/spf13/viper"

	"github.com/glacierdb/glacier/table"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "glacier.db")
	v.SetDefault("catalog.table", "default")
	v.SetDefault("catalog.default_branch", table.MainBranch)

	v.SetDefault("log.json", false)
}
