// Package version provides version information for the docflow application.
// It includes build-time information such as version, git commit, build date, etc.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ReleaseURL 发布页地址前缀
const ReleaseURL = "https://github.com/yeisme/docflow/releases/tag/"

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion returns the version information
func GetVersion() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
	}
}

// GetVersionString returns a detailed one-line version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("docflow has version %s built with %s from %s (%s) on %s",
		info.Version,
		info.GoVersion,
		info.GitCommit,
		info.Platform,
		info.BuildDate,
	)
}

// ReleaseTag 返回规范化的 semver 标签（带 v 前缀）；版本不是合法 semver 时返回 false
func ReleaseTag(v string) (string, bool) {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", false
	}
	return v, true
}

// GetShortVersionString returns a short version string similar to gh
// 只有合法的 semver 版本才会附带发布页链接
func GetShortVersionString() string {
	info := GetVersion()

	dateStr := info.BuildDate
	if buildTime, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
		dateStr = buildTime.Format("2006-01-02")
	}

	s := fmt.Sprintf("docflow version %s (%s)", info.Version, dateStr)
	if tag, ok := ReleaseTag(info.Version); ok {
		s += "\n" + ReleaseURL + tag
	}
	return s
}
