// Package context 保存一次命令执行期间共享的配置、viper 实例与日志记录器
package context

import (
	"context"

	"github.com/spf13/viper"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/utils/log"
)

// GlobalFlags 根命令的持久化标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// DocflowContext 命令执行上下文
type DocflowContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 加载配置所用的 viper 实例
	Logger log.Logger      // 日志记录器
}

// InitDocflowContext 加载配置并初始化日志，命令行标志优先于配置文件
func InitDocflowContext(ctx context.Context, flags GlobalFlags) (*DocflowContext, error) {
	config, err := configs.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &DocflowContext{
		Context: ctx,
		Config:  config,
		Viper:   configs.GetViper(),
		Logger:  logger,
	}, nil
}
