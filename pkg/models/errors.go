package models

import "errors"

// 运行期错误分类，调用方通过 errors.Is 判断
var (
	// ErrFileSystem 扫描目录不存在或不可读
	ErrFileSystem = errors.New("filesystem error")
	// ErrIO 单个文件无法读取
	ErrIO = errors.New("io error")
	// ErrSerialization 报告无法序列化或写入
	ErrSerialization = errors.New("serialization error")
)
