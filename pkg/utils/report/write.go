package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yeisme/docflow/pkg/models"
)

// Marshal 以两空格缩进编码为 JSON，不转义 HTML 字符，末尾带换行
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: encode: %w", models.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// Encode 将 v 编码后写入 w
func Encode(w io.Writer, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: write: %w", models.ErrSerialization, err)
	}
	return nil
}

// WriteReport 将 v 写入 path，必要时创建父目录，已存在的文件会被直接覆盖
func WriteReport(path string, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	return WriteFile(path, b)
}

// WriteFile 写入已编码的内容，必要时创建父目录
func WriteFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create dir for %s: %w", models.ErrSerialization, path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", models.ErrSerialization, path, err)
	}
	return nil
}

// Summary 返回 analyze 完成后打印的一行摘要
func Summary(r *models.Report, path string) string {
	return fmt.Sprintf("Created %s with %d modules, %d classes, %d functions",
		filepath.Base(path), r.TotalModules, r.TotalClasses, r.TotalFunctions)
}
