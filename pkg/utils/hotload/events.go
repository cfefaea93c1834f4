package hotload

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/yeisme/docflow/pkg/utils/log"
)

// runEventLoop 处理 fsnotify 事件，过滤无关文件并在防抖后调用 hook
func runEventLoop(ctx context.Context, wc *WatchContext, hook Func) error {
	d := newDebouncer(wc.opts.Debounce)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-wc.watcher.Events:
			if !ok {
				return nil
			}
			if handleEvent(wc, event) {
				d.arm()
			}
		case <-d.C():
			d.fired()
			log.Info().Msg("change detected, regenerating")
			hook()
		case err, ok := <-wc.watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

// handleEvent 判断事件是否代表真实变更，并更新状态缓存
func handleEvent(wc *WatchContext, event fsnotify.Event) bool {
	if !accept(wc.opts.Filter, event.Name) {
		log.Trace().Str("file", event.Name).Msg("ignored event")
		return false
	}
	log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("event")

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return onWrite(wc, event.Name)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return onRemoveOrRename(wc, event.Name)
	}
	return false
}

// onWrite 处理新建与写入；内容哈希未变时不算变更
func onWrite(wc *WatchContext, name string) bool {
	old, tracked := wc.cache[name]
	st, ok := statFile(name)
	if !ok {
		if tracked {
			delete(wc.cache, name)
			return true
		}
		return false
	}
	wc.cache[name] = st
	if !tracked {
		return true
	}
	if old.hash != "" && st.hash != "" {
		return old.hash != st.hash
	}
	return old.size != st.size || !old.modTime.Equal(st.modTime)
}

// onRemoveOrRename 只有已跟踪的文件被移除才算变更
func onRemoveOrRename(wc *WatchContext, name string) bool {
	if _, tracked := wc.cache[name]; tracked {
		delete(wc.cache, name)
		return true
	}
	return false
}
