package catalog

// atomicWeights 各元素的原子量展示字符串（展示层原样使用，不参与计算）
// 无稳定同位素的元素使用最稳定同位素的质量数
var atomicWeights = map[string]string{
	"H": "1.008 u(±)", "He": "4.0026 u(±)", "Li": "6.94 u(±)", "Be": "9.0122 u(±)",
	"B": "10.81 u(±)", "C": "12.011 u(±)", "N": "14.007 u(±)", "O": "15.999 u(±)",
	"F": "18.998 u(±)", "Ne": "20.180 u(±)", "Na": "22.990 u(±)", "Mg": "24.305 u(±)",
	"Al": "26.982 u(±)", "Si": "28.085 u(±)", "P": "30.974 u(±)", "S": "32.06 u(±)",
	"Cl": "35.45 u(±)", "Ar": "39.948 u(±)", "K": "39.098 u(±)", "Ca": "40.078 u(±)",
	"Sc": "44.956 u(±)", "Ti": "47.867 u(±)", "V": "50.942 u(±)", "Cr": "51.996 u(±)",
	"Mn": "54.938 u(±)", "Fe": "55.845 u(±)", "Co": "58.933 u(±)", "Ni": "58.693 u(±)",
	"Cu": "63.546 u(±)", "Zn": "65.38 u(±)", "Ga": "69.723 u(±)", "Ge": "72.630 u(±)",
	"As": "74.922 u(±)", "Se": "78.971 u(±)", "Br": "79.904 u(±)", "Kr": "83.798 u(±)",
	"Rb": "85.468 u(±)", "Sr": "87.62 u(±)", "Y": "88.906 u(±)", "Zr": "91.224 u(±)",
	"Nb": "92.906 u(±)", "Mo": "95.95 u(±)", "Tc": "98 u(±)", "Ru": "101.07 u(±)",
	"Rh": "102.91 u(±)", "Pd": "106.42 u(±)", "Ag": "107.87 u(±)", "Cd": "112.41 u(±)",
	"In": "114.82 u(±)", "Sn": "118.71 u(±)", "Sb": "121.76 u(±)", "Te": "127.60 u(±)",
	"I": "126.90 u(±)", "Xe": "131.29 u(±)", "Cs": "132.91 u(±)", "Ba": "137.33 u(±)",
	"La": "138.91 u(±)", "Ce": "140.12 u(±)", "Pr": "140.91 u(±)", "Nd": "144.24 u(±)",
	"Pm": "145 u(±)", "Sm": "150.36 u(±)", "Eu": "151.96 u(±)", "Gd": "157.25 u(±)",
	"Tb": "158.93 u(±)", "Dy": "162.50 u(±)", "Ho": "164.93 u(±)", "Er": "167.26 u(±)",
	"Tm": "168.93 u(±)", "Yb": "173.05 u(±)", "Lu": "174.97 u(±)", "Hf": "178.49 u(±)",
	"Ta": "180.95 u(±)", "W": "183.84 u(±)", "Re": "186.21 u(±)", "Os": "190.23 u(±)",
	"Ir": "192.22 u(±)", "Pt": "195.08 u(±)", "Au": "196.97 u(±)", "Hg": "200.59 u(±)",
	"Tl": "204.38 u(±)", "Pb": "207.2 u(±)", "Bi": "208.98 u(±)", "Po": "209 u(±)",
	"At": "210 u(±)", "Rn": "222 u(±)", "Fr": "223 u(±)", "Ra": "226 u(±)",
	"Ac": "227 u(±)", "Th": "232.04 u(±)", "Pa": "231.04 u(±)", "U": "238.03 u(±)",
	"Np": "237 u(±)", "Pu": "244 u(±)", "Am": "243 u(±)", "Cm": "247 u(±)",
	"Bk": "247 u(±)", "Cf": "251 u(±)", "Es": "252 u(±)", "Fm": "257 u(±)",
	"Md": "258 u(±)", "No": "259 u(±)", "Lr": "266 u(±)", "Rf": "267 u(±)",
	"Db": "268 u(±)", "Sg": "269 u(±)", "Bh": "270 u(±)", "Hs": "277 u(±)",
	"Mt": "278 u(±)", "Ds": "281 u(±)", "Rg": "282 u(±)", "Cn": "285 u(±)",
	"Nh": "286 u(±)", "Fl": "289 u(±)", "Mc": "290 u(±)", "Lv": "293 u(±)",
	"Ts": "294 u(±)", "Og": "294 u(±)",
}
