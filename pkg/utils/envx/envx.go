package envx

import "os"

// Get 读取环境变量，若不存在则返回默认值
func Get(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
