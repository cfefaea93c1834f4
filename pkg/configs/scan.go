package configs

import "github.com/spf13/viper"

// ScanConfig 目录扫描配置
type ScanConfig struct {
	Dir             string   `mapstructure:"dir" json:"dir" yaml:"dir" toml:"dir" validate:"required"`                          // 扫描目录，不递归
	Suffix          string   `mapstructure:"suffix" json:"suffix" yaml:"suffix" toml:"suffix" validate:"required,startswith=."` // 源文件后缀
	Exclude         []string `mapstructure:"exclude" json:"exclude" yaml:"exclude" toml:"exclude"`                              // 精确匹配的排除文件名
	ExcludePatterns []string `mapstructure:"exclude_patterns" json:"exclude_patterns" yaml:"exclude_patterns" toml:"exclude_patterns"`
}

func setScanConfigDefaults(v *viper.Viper) {
	v.SetDefault("scan.dir", "scripts")
	v.SetDefault("scan.suffix", ".js")
	v.SetDefault("scan.exclude", []string{"qrcode.min.js"})
	v.SetDefault("scan.exclude_patterns", []string{})
}
