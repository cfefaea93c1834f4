// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 DOCFLOW_SCAN_DIR
const EnvPrefix = "DOCFLOW"

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	App     AppConfig     `mapstructure:"app" json:"app" yaml:"app" toml:"app"`
	Scan    ScanConfig    `mapstructure:"scan" json:"scan" yaml:"scan" toml:"scan"`
	Analyze AnalyzeConfig `mapstructure:"analyze" json:"analyze" yaml:"analyze" toml:"analyze"`
	Watch   WatchConfig   `mapstructure:"watch" json:"watch" yaml:"watch" toml:"watch"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setScanConfigDefaults(v)
	setAnalyzeConfigDefaults(v)
	setWatchConfigDefaults(v)
}

var (
	globalConfig *Config
	globalViper  *viper.Viper
)

// searchPaths 配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/docflow",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths,
			"$USERPROFILE",
			"$APPDATA/docflow",
		)
	} else {
		paths = append(paths, "/etc/docflow")
	}
	return paths
}

// findConfigFile 尝试查找不同格式的配置文件，返回第一个存在的文件
func findConfigFile() (string, bool) {
	configNames := []string{".docflow", "docflow"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					return configFile, true
				}
			}
		}
	}

	return "", false
}

// loadDotEnv 加载当前目录下的 .env，文件不存在不视为错误
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("加载 .env 失败: %w", err)
	}
	return nil
}

// NewViper 创建一个已设置默认值、环境变量映射与配置文件路径的 viper 实例
// configPath 为空时按搜索路径查找配置文件
func NewViper(configPath string) *viper.Viper {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if file, ok := findConfigFile(); ok {
		v.SetConfigFile(file)
	}

	// 设置环境变量前缀，scan.dir -> DOCFLOW_SCAN_DIR
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := NewViper(configPath)

	// 读取配置文件；没有任何配置文件时使用默认值
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	globalConfig = &config
	globalViper = v
	return &config, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("无法加载配置: %v", err))
		}
		return config
	}
	return globalConfig
}

// GetViper 返回最近一次 LoadConfig 使用的 viper 实例
func GetViper() *viper.Viper {
	if globalViper == nil {
		_ = GetConfig()
	}
	return globalViper
}

// Default 返回仅由默认值构成的配置
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// 默认值均为基础类型，解码不会失败
	_ = v.Unmarshal(&config)
	return config
}
