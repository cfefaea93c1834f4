package configs

import (
	"github.com/spf13/viper"
)

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Debug   bool   `mapstructure:"debug" json:"debug" yaml:"debug" toml:"debug"`
	Verbose bool   `mapstructure:"verbose" json:"verbose" yaml:"verbose" toml:"verbose"`
	Quiet   bool   `mapstructure:"quiet" json:"quiet" yaml:"quiet" toml:"quiet"` // 是否安静模式，禁止所有日志输出
}

func setAppConfigDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "docflow")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.verbose", false)
	v.SetDefault("app.quiet", false)
}
