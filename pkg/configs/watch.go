package configs

import "github.com/spf13/viper"

// WatchConfig watch 子命令配置
type WatchConfig struct {
	Debounce int `mapstructure:"debounce" json:"debounce" yaml:"debounce" toml:"debounce" validate:"gte=0"` // 防抖时间，毫秒
}

func setWatchConfigDefaults(v *viper.Viper) {
	v.SetDefault("watch.debounce", 300)
}
