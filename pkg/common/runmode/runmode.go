package runmode

const (
	// Debug 调试模式
	Debug = "debug"
	// Test 测试模式
	Test = "test"
	// Release 正式发布模式
	Release = "release"
)
