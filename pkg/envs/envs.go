package envs

import (
	"path/filepath"

	"elementarium/pkg/common/runmode"
	"elementarium/pkg/utils/envx"
	"elementarium/pkg/utils/pathx"
)

// BaseDir 项目根目录
var BaseDir = filepath.Join(pathx.GetCurPKGPath(), "../..")

// 以下变量值可通过环境变量指定
var (
	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// AllowedOrigins 允许跨域访问的来源（逗号分隔，* 表示不限制）
	AllowedOrigins = envx.Get("ALLOWED_ORIGINS", "*")

	// RealClientIPHeaderKey 获取客户端真实 IP 的请求头（为空则使用 ClientIP()）
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// DataBaseDir 生成的元素周期表数据存放目录
	DataBaseDir = envx.Get("DATA_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../data"))

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// WikiAPIURL 维基百科 API 地址（元素简介数据来源）
	WikiAPIURL = envx.Get("WIKI_API_URL", "https://en.wikipedia.org/w/api.php")

	// TranslateAPIURL 翻译服务 API 地址（LibreTranslate 协议）
	TranslateAPIURL = envx.Get("TRANSLATE_API_URL", "https://libretranslate.com/translate")

	// TranslateAPIKey 翻译服务 API Key（可为空）
	TranslateAPIKey = envx.Get("TRANSLATE_API_KEY", "")
)

// Mysql 相关配置
var (
	// MysqlHost 数据库地址
	MysqlHost = envx.Get("MYSQL_HOST", "127.0.0.1")

	// MysqlPort 数据库端口
	MysqlPort = envx.Get("MYSQL_PORT", "3306")

	// MysqlUser 数据库用户名
	MysqlUser = envx.Get("MYSQL_USER", "root")

	// MysqlPassword 数据库密码
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")

	// MysqlDatabase 数据库名称
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "elementarium")

	// MysqlCharSet 数据库字符集
	MysqlCharSet = envx.Get("MYSQL_CHARSET", "utf8mb4")
)
