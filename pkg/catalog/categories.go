package catalog

import (
	"elementarium/pkg/model"
)

// 元素分类（闭集，共 10 种）
const (
	CategoryAlkaliMetal         model.Category = "Alkali Metal"
	CategoryAlkalineEarthMetal  model.Category = "Alkaline Earth Metal"
	CategoryTransitionMetal     model.Category = "Transition Metal"
	CategoryPostTransitionMetal model.Category = "Post-Transition Metal"
	CategoryMetalloid           model.Category = "Metalloid"
	CategoryReactiveNonmetal    model.Category = "Reactive Nonmetal"
	CategoryNobleGas            model.Category = "Noble Gas"
	CategoryLanthanide          model.Category = "Lanthanide"
	CategoryActinide            model.Category = "Actinide"
	CategoryUnknown             model.Category = "Unknown"
)

// allCategories 全量分类列表
var allCategories = []model.Category{
	CategoryAlkaliMetal,
	CategoryAlkalineEarthMetal,
	CategoryTransitionMetal,
	CategoryPostTransitionMetal,
	CategoryMetalloid,
	CategoryReactiveNonmetal,
	CategoryNobleGas,
	CategoryLanthanide,
	CategoryActinide,
	CategoryUnknown,
}

// categoryMembers 各分类的成员符号列表（必须恰好划分全部 118 个元素）
var categoryMembers = map[model.Category][]string{
	CategoryAlkaliMetal:        {"Li", "Na", "K", "Rb", "Cs", "Fr"},
	CategoryAlkalineEarthMetal: {"Be", "Mg", "Ca", "Sr", "Ba", "Ra"},
	CategoryTransitionMetal: {
		"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
		"Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
		"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
		"Rf", "Db", "Sg", "Bh", "Hs",
	},
	CategoryPostTransitionMetal: {"Al", "Ga", "In", "Sn", "Tl", "Pb", "Bi", "Po"},
	CategoryMetalloid:           {"B", "Si", "Ge", "As", "Sb", "Te", "At"},
	CategoryReactiveNonmetal:    {"H", "C", "N", "O", "F", "P", "S", "Cl", "Se", "Br", "I"},
	CategoryNobleGas:            {"He", "Ne", "Ar", "Kr", "Xe", "Rn"},
	CategoryLanthanide: {
		"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd",
		"Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	},
	CategoryActinide: {
		"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm",
		"Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	},
	CategoryUnknown: {"Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og"},
}

// categoryColors 各分类的展示颜色对（主色 + 浅色，ARGB）
var categoryColors = map[model.Category]model.ColorPair{
	CategoryAlkaliMetal:         {0xFFD32F2F, 0xFFFF6659},
	CategoryAlkalineEarthMetal:  {0xFFF57C00, 0xFFFFAD42},
	CategoryTransitionMetal:     {0xFFFBC02D, 0xFFFFF263},
	CategoryPostTransitionMetal: {0xFF388E3C, 0xFF6ABF69},
	CategoryMetalloid:           {0xFF00796B, 0xFF48A999},
	CategoryReactiveNonmetal:    {0xFF536DFE, 0xFF8E99F3},
	CategoryNobleGas:            {0xFF7B1FA2, 0xFFAE52D4},
	CategoryLanthanide:          {0xFF0288D1, 0xFF5EB8FF},
	CategoryActinide:            {0xFFC2185B, 0xFFFA5788},
	CategoryUnknown:             {0xFF616161, 0xFF8E8E8E},
}
