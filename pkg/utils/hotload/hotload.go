// Package hotload 监视目录中的文件变化，在防抖后触发回调
//
// 只监视单层目录；回调负责完整地重新生成输出，这里不做增量处理
package hotload

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yeisme/docflow/pkg/utils/log"
)

// DefaultDebounce 未配置防抖时长时使用的默认值
const DefaultDebounce = 300 * time.Millisecond

// Func 变更被确认后执行的回调
type Func func()

// Options 监视选项
type Options struct {
	Dir      string
	Debounce time.Duration
	// Filter 根据文件名判断是否关心该文件，为 nil 时关心所有文件
	Filter func(name string) bool
}

// fileState 文件元数据与内容哈希，用于区分真实变更与重复事件
type fileState struct {
	modTime time.Time
	size    int64
	hash    string
}

// stateCache 文件路径到最近一次已知状态的映射
type stateCache map[string]fileState

// WatchContext 事件循环的运行时状态，只在事件循环 goroutine 中访问
type WatchContext struct {
	watcher *fsnotify.Watcher
	opts    Options
	cache   stateCache
}

// Watch 阻塞监视 opts.Dir，直到 ctx 被取消
func Watch(ctx context.Context, opts Options, hook Func) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("close watcher")
		}
	}()

	cache, err := newStateCache(opts.Dir, opts.Filter)
	if err != nil {
		return err
	}
	if err := watcher.Add(opts.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", opts.Dir, err)
	}

	log.Info().Str("dir", opts.Dir).
		Dur("debounce", opts.Debounce).
		Int("files", len(cache)).
		Msg("watching for changes, press Ctrl+C to stop")

	wc := &WatchContext{watcher: watcher, opts: opts, cache: cache}
	return runEventLoop(ctx, wc, hook)
}

// newStateCache 扫描目录（不递归）建立初始状态
func newStateCache(dir string, filter func(string) bool) (stateCache, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("build state cache for %s: %w", dir, err)
	}
	cache := make(stateCache, len(entries))
	for _, e := range entries {
		if e.IsDir() || !accept(filter, e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if st, ok := statFile(path); ok {
			cache[path] = st
		}
	}
	return cache, nil
}

func accept(filter func(string) bool, name string) bool {
	return filter == nil || filter(filepath.Base(name))
}

// statFile 读取文件当前状态；文件不存在或是目录时返回 false
func statFile(path string) (fileState, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fileState{}, false
	}
	return fileState{
		modTime: info.ModTime(),
		size:    info.Size(),
		hash:    calculateFileHash(path, info.Size()),
	}, true
}

// calculateFileHash 计算小文件（< 1MB）的 MD5，用于判断内容是否真正改变
func calculateFileHash(filePath string, size int64) string {
	const maxHashSize = 1024 * 1024
	if size > maxHashSize {
		return fmt.Sprintf("large:%d", size)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer func() { _ = file.Close() }()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return ""
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
