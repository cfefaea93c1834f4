package hotload

import (
	"time"
)

// debouncer 在最后一次 arm 之后经过 d 才发出信号
// 不是并发安全的，只在事件循环中使用
type debouncer struct {
	d     time.Duration
	timer *time.Timer
}

func newDebouncer(d time.Duration) *debouncer {
	return &debouncer{d: d}
}

// arm 启动或重置定时器
func (b *debouncer) arm() {
	if b.timer == nil {
		b.timer = time.NewTimer(b.d)
		return
	}
	if !b.timer.Stop() {
		select {
		case <-b.timer.C:
		default:
		}
	}
	b.timer.Reset(b.d)
}

// C 返回定时器通道；未启动时返回 nil，select 中永远不会就绪
func (b *debouncer) C() <-chan time.Time {
	if b.timer == nil {
		return nil
	}
	return b.timer.C
}

// fired 在收到信号后调用，清空定时器
func (b *debouncer) fired() {
	b.timer = nil
}

func (b *debouncer) stop() {
	if b.timer != nil {
		b.timer.Stop()
	}
}
