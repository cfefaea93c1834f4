package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigFile 返回指定格式的默认配置文件名
func DefaultConfigFile(format OutputFormat) string {
	return ".docflow." + string(format)
}

// CreateDefaultConfig 将默认配置写入 path；文件已存在时返回错误
func CreateDefaultConfig(path string, format OutputFormat) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	data, err := Marshal(Default(), format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
