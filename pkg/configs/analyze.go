package configs

import "github.com/spf13/viper"

// DefaultDependencies 默认的依赖白名单
var DefaultDependencies = []string{
	"Config", "Utils", "Storage", "Sync", "TaskManager", "Renderer", "QRCode", "jsQR",
}

// AnalyzeConfig 结构分析配置
type AnalyzeConfig struct {
	Output       string   `mapstructure:"output" json:"output" yaml:"output" toml:"output" validate:"required"`
	Dependencies []string `mapstructure:"dependencies" json:"dependencies" yaml:"dependencies" toml:"dependencies" validate:"dive,jsident"`
}

func setAnalyzeConfigDefaults(v *viper.Viper) {
	v.SetDefault("analyze.output", "docs/codebase-flow/technical/modules.json")
	v.SetDefault("analyze.dependencies", DefaultDependencies)
}
