package catalog

import (
	"elementarium/pkg/model"
)

// elementTable 周期表全量元素（118 个），坐标为 18 列 x 10 行布局：
// 0-6 行为主表（镧系 / 锕系位置留空），7 行为分隔空行，8/9 行为镧系与锕系
var elementTable = []model.Element{
	{Number: 1, Symbol: "H", Name: "Hydrogen", Col: 0, Row: 0},
	{Number: 2, Symbol: "He", Name: "Helium", Col: 17, Row: 0},
	{Number: 3, Symbol: "Li", Name: "Lithium", Col: 0, Row: 1},
	{Number: 4, Symbol: "Be", Name: "Beryllium", Col: 1, Row: 1},
	{Number: 5, Symbol: "B", Name: "Boron", Col: 12, Row: 1},
	{Number: 6, Symbol: "C", Name: "Carbon", Col: 13, Row: 1},
	{Number: 7, Symbol: "N", Name: "Nitrogen", Col: 14, Row: 1},
	{Number: 8, Symbol: "O", Name: "Oxygen", Col: 15, Row: 1},
	{Number: 9, Symbol: "F", Name: "Fluorine", Col: 16, Row: 1},
	{Number: 10, Symbol: "Ne", Name: "Neon", Col: 17, Row: 1},
	{Number: 11, Symbol: "Na", Name: "Sodium", Col: 0, Row: 2},
	{Number: 12, Symbol: "Mg", Name: "Magnesium", Col: 1, Row: 2},
	{Number: 13, Symbol: "Al", Name: "Aluminium", Col: 12, Row: 2},
	{Number: 14, Symbol: "Si", Name: "Silicon", Col: 13, Row: 2},
	{Number: 15, Symbol: "P", Name: "Phosphorus", Col: 14, Row: 2},
	{Number: 16, Symbol: "S", Name: "Sulfur", Col: 15, Row: 2},
	{Number: 17, Symbol: "Cl", Name: "Chlorine", Col: 16, Row: 2},
	{Number: 18, Symbol: "Ar", Name: "Argon", Col: 17, Row: 2},
	{Number: 19, Symbol: "K", Name: "Potassium", Col: 0, Row: 3},
	{Number: 20, Symbol: "Ca", Name: "Calcium", Col: 1, Row: 3},
	{Number: 21, Symbol: "Sc", Name: "Scandium", Col: 2, Row: 3},
	{Number: 22, Symbol: "Ti", Name: "Titanium", Col: 3, Row: 3},
	{Number: 23, Symbol: "V", Name: "Vanadium", Col: 4, Row: 3},
	{Number: 24, Symbol: "Cr", Name: "Chromium", Col: 5, Row: 3},
	{Number: 25, Symbol: "Mn", Name: "Manganese", Col: 6, Row: 3},
	{Number: 26, Symbol: "Fe", Name: "Iron", Col: 7, Row: 3},
	{Number: 27, Symbol: "Co", Name: "Cobalt", Col: 8, Row: 3},
	{Number: 28, Symbol: "Ni", Name: "Nickel", Col: 9, Row: 3},
	{Number: 29, Symbol: "Cu", Name: "Copper", Col: 10, Row: 3},
	{Number: 30, Symbol: "Zn", Name: "Zinc", Col: 11, Row: 3},
	{Number: 31, Symbol: "Ga", Name: "Gallium", Col: 12, Row: 3},
	{Number: 32, Symbol: "Ge", Name: "Germanium", Col: 13, Row: 3},
	{Number: 33, Symbol: "As", Name: "Arsenic", Col: 14, Row: 3},
	{Number: 34, Symbol: "Se", Name: "Selenium", Col: 15, Row: 3},
	{Number: 35, Symbol: "Br", Name: "Bromine", Col: 16, Row: 3},
	{Number: 36, Symbol: "Kr", Name: "Krypton", Col: 17, Row: 3},
	{Number: 37, Symbol: "Rb", Name: "Rubidium", Col: 0, Row: 4},
	{Number: 38, Symbol: "Sr", Name: "Strontium", Col: 1, Row: 4},
	{Number: 39, Symbol: "Y", Name: "Yttrium", Col: 2, Row: 4},
	{Number: 40, Symbol: "Zr", Name: "Zirconium", Col: 3, Row: 4},
	{Number: 41, Symbol: "Nb", Name: "Niobium", Col: 4, Row: 4},
	{Number: 42, Symbol: "Mo", Name: "Molybdenum", Col: 5, Row: 4},
	{Number: 43, Symbol: "Tc", Name: "Technetium", Col: 6, Row: 4},
	{Number: 44, Symbol: "Ru", Name: "Ruthenium", Col: 7, Row: 4},
	{Number: 45, Symbol: "Rh", Name: "Rhodium", Col: 8, Row: 4},
	{Number: 46, Symbol: "Pd", Name: "Palladium", Col: 9, Row: 4},
	{Number: 47, Symbol: "Ag", Name: "Silver", Col: 10, Row: 4},
	{Number: 48, Symbol: "Cd", Name: "Cadmium", Col: 11, Row: 4},
	{Number: 49, Symbol: "In", Name: "Indium", Col: 12, Row: 4},
	{Number: 50, Symbol: "Sn", Name: "Tin", Col: 13, Row: 4},
	{Number: 51, Symbol: "Sb", Name: "Antimony", Col: 14, Row: 4},
	{Number: 52, Symbol: "Te", Name: "Tellurium", Col: 15, Row: 4},
	{Number: 53, Symbol: "I", Name: "Iodine", Col: 16, Row: 4},
	{Number: 54, Symbol: "Xe", Name: "Xenon", Col: 17, Row: 4},
	{Number: 55, Symbol: "Cs", Name: "Caesium", Col: 0, Row: 5},
	{Number: 56, Symbol: "Ba", Name: "Barium", Col: 1, Row: 5},
	{Number: 57, Symbol: "La", Name: "Lanthanum", Col: 2, Row: 8},
	{Number: 58, Symbol: "Ce", Name: "Cerium", Col: 3, Row: 8},
	{Number: 59, Symbol: "Pr", Name: "Praseodymium", Col: 4, Row: 8},
	{Number: 60, Symbol: "Nd", Name: "Neodymium", Col: 5, Row: 8},
	{Number: 61, Symbol: "Pm", Name: "Promethium", Col: 6, Row: 8},
	{Number: 62, Symbol: "Sm", Name: "Samarium", Col: 7, Row: 8},
	{Number: 63, Symbol: "Eu", Name: "Europium", Col: 8, Row: 8},
	{Number: 64, Symbol: "Gd", Name: "Gadolinium", Col: 9, Row: 8},
	{Number: 65, Symbol: "Tb", Name: "Terbium", Col: 10, Row: 8},
	{Number: 66, Symbol: "Dy", Name: "Dysprosium", Col: 11, Row: 8},
	{Number: 67, Symbol: "Ho", Name: "Holmium", Col: 12, Row: 8},
	{Number: 68, Symbol: "Er", Name: "Erbium", Col: 13, Row: 8},
	{Number: 69, Symbol: "Tm", Name: "Thulium", Col: 14, Row: 8},
	{Number: 70, Symbol: "Yb", Name: "Ytterbium", Col: 15, Row: 8},
	{Number: 71, Symbol: "Lu", Name: "Lutetium", Col: 16, Row: 8},
	{Number: 72, Symbol: "Hf", Name: "Hafnium", Col: 3, Row: 5},
	{Number: 73, Symbol: "Ta", Name: "Tantalum", Col: 4, Row: 5},
	{Number: 74, Symbol: "W", Name: "Tungsten", Col: 5, Row: 5},
	{Number: 75, Symbol: "Re", Name: "Rhenium", Col: 6, Row: 5},
	{Number: 76, Symbol: "Os", Name: "Osmium", Col: 7, Row: 5},
	{Number: 77, Symbol: "Ir", Name: "Iridium", Col: 8, Row: 5},
	{Number: 78, Symbol: "Pt", Name: "Platinum", Col: 9, Row: 5},
	{Number: 79, Symbol: "Au", Name: "Gold", Col: 10, Row: 5},
	{Number: 80, Symbol: "Hg", Name: "Mercury", Col: 11, Row: 5},
	{Number: 81, Symbol: "Tl", Name: "Thallium", Col: 12, Row: 5},
	{Number: 82, Symbol: "Pb", Name: "Lead", Col: 13, Row: 5},
	{Number: 83, Symbol: "Bi", Name: "Bismuth", Col: 14, Row: 5},
	{Number: 84, Symbol: "Po", Name: "Polonium", Col: 15, Row: 5},
	{Number: 85, Symbol: "At", Name: "Astatine", Col: 16, Row: 5},
	{Number: 86, Symbol: "Rn", Name: "Radon", Col: 17, Row: 5},
	{Number: 87, Symbol: "Fr", Name: "Francium", Col: 0, Row: 6},
	{Number: 88, Symbol: "Ra", Name: "Radium", Col: 1, Row: 6},
	{Number: 89, Symbol: "Ac", Name: "Actinium", Col: 2, Row: 9},
	{Number: 90, Symbol: "Th", Name: "Thorium", Col: 3, Row: 9},
	{Number: 91, Symbol: "Pa", Name: "Protactinium", Col: 4, Row: 9},
	{Number: 92, Symbol: "U", Name: "Uranium", Col: 5, Row: 9},
	{Number: 93, Symbol: "Np", Name: "Neptunium", Col: 6, Row: 9},
	{Number: 94, Symbol: "Pu", Name: "Plutonium", Col: 7, Row: 9},
	{Number: 95, Symbol: "Am", Name: "Americium", Col: 8, Row: 9},
	{Number: 96, Symbol: "Cm", Name: "Curium", Col: 9, Row: 9},
	{Number: 97, Symbol: "Bk", Name: "Berkelium", Col: 10, Row: 9},
	{Number: 98, Symbol: "Cf", Name: "Californium", Col: 11, Row: 9},
	{Number: 99, Symbol: "Es", Name: "Einsteinium", Col: 12, Row: 9},
	{Number: 100, Symbol: "Fm", Name: "Fermium", Col: 13, Row: 9},
	{Number: 101, Symbol: "Md", Name: "Mendelevium", Col: 14, Row: 9},
	{Number: 102, Symbol: "No", Name: "Nobelium", Col: 15, Row: 9},
	{Number: 103, Symbol: "Lr", Name: "Lawrencium", Col: 16, Row: 9},
	{Number: 104, Symbol: "Rf", Name: "Rutherfordium", Col: 3, Row: 6},
	{Number: 105, Symbol: "Db", Name: "Dubnium", Col: 4, Row: 6},
	{Number: 106, Symbol: "Sg", Name: "Seaborgium", Col: 5, Row: 6},
	{Number: 107, Symbol: "Bh", Name: "Bohrium", Col: 6, Row: 6},
	{Number: 108, Symbol: "Hs", Name: "Hassium", Col: 7, Row: 6},
	{Number: 109, Symbol: "Mt", Name: "Meitnerium", Col: 8, Row: 6},
	{Number: 110, Symbol: "Ds", Name: "Darmstadtium", Col: 9, Row: 6},
	{Number: 111, Symbol: "Rg", Name: "Roentgenium", Col: 10, Row: 6},
	{Number: 112, Symbol: "Cn", Name: "Copernicium", Col: 11, Row: 6},
	{Number: 113, Symbol: "Nh", Name: "Nihonium", Col: 12, Row: 6},
	{Number: 114, Symbol: "Fl", Name: "Flerovium", Col: 13, Row: 6},
	{Number: 115, Symbol: "Mc", Name: "Moscovium", Col: 14, Row: 6},
	{Number: 116, Symbol: "Lv", Name: "Livermorium", Col: 15, Row: 6},
	{Number: 117, Symbol: "Ts", Name: "Tennessine", Col: 16, Row: 6},
	{Number: 118, Symbol: "Og", Name: "Oganesson", Col: 17, Row: 6},
}
