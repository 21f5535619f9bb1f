package catalog

// titleOverrides 元素名 -> 维基百科词条标题的特例映射
// 未在此表中的元素名直接作为词条标题使用
var titleOverrides = map[string]string{
	// Mercury 词条是罗马神话 / 行星的消歧义页
	"Mercury": "Mercury (element)",
}
