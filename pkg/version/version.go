package version

import "fmt"

// 以下变量值在编译时通过 --ldflags 注入
var (
	// Version 版本号
	Version = "0.0.0"
	// GitCommit CommitID
	GitCommit = "unknown"
	// BuildTime 构建时间
	BuildTime = "unknown"
)

// GetVersion 获取版本信息
func GetVersion() string {
	return fmt.Sprintf("Version: %s\nGitCommit: %s\nBuildTime: %s", Version, GitCommit, BuildTime)
}
