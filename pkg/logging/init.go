package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"elementarium/pkg/envs"
)

var initOnce sync.Once

// 注：虽然 zap 性能更好，不过 logrus 展示效果较好
// 离线生成任务 + 小查询服务，性能要求不高，先用 logrus 吧

// 访问日志
var accessLogger *logrus.Logger

// 简介抓取日志（Fetcher 分批请求记录）
var fetchLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeFetch  = "fetch"
)

func InitLogger() {
	initSystemLogger()

	initOnce.Do(func() {
		accessLogger = newJsonLogger(LogTypeAccess)
		fetchLogger = newJsonLogger(LogTypeFetch)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetFetchLogger() *logrus.Logger {
	if fetchLogger == nil {
		return GetSystemLogger()
	}
	return fetchLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
