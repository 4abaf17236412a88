package font

// Glyph definitions for the contribution-grid font. Each glyph is 7 rows tall
// (one row per weekday) with a per-character width. '#' marks a lit cell, '.'
// an empty one. The strings are parsed and validated once at init; a typo in
// this table (wrong height, ragged rows, stray rune) fails process start.
var glyphRows = map[rune][]string{
	'A': {
		".###.",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'B': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#...#",
		"#...#",
		"####.",
	},
	'C': {
		".###.",
		"#...#",
		"#....",
		"#....",
		"#....",
		"#...#",
		".###.",
	},
	'D': {
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	},
	'E': {
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#####",
	},
	'F': {
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#....",
	},
	'G': {
		".###.",
		"#...#",
		"#....",
		"#.###",
		"#...#",
		"#...#",
		".####",
	},
	'H': {
		"#...#",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'I': {
		"###",
		".#.",
		".#.",
		".#.",
		".#.",
		".#.",
		"###",
	},
	'J': {
		"....#",
		"....#",
		"....#",
		"....#",
		"....#",
		"#...#",
		".###.",
	},
	'K': {
		"#...#",
		"#..#.",
		"#.#..",
		"##...",
		"#.#..",
		"#..#.",
		"#...#",
	},
	'L': {
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#####",
	},
	'M': {
		"#...#",
		"##.##",
		"#.#.#",
		"#.#.#",
		"#...#",
		"#...#",
		"#...#",
	},
	'N': {
		"#...#",
		"##..#",
		"#.#.#",
		"#..##",
		"#...#",
		"#...#",
		"#...#",
	},
	'O': {
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'P': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#....",
		"#....",
		"#....",
	},
	'Q': {
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#..#.",
		".##.#",
	},
	'R': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#.#..",
		"#..#.",
		"#...#",
	},
	'S': {
		".####",
		"#....",
		"#....",
		".###.",
		"....#",
		"....#",
		"####.",
	},
	'T': {
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'U': {
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'V': {
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
	},
	'W': {
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		"##.##",
		"#...#",
	},
	'X': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
	},
	'Y': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'Z': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#####",
	},

	'a': {
		"....",
		"....",
		".##.",
		"...#",
		".###",
		"#..#",
		".###",
	},
	'b': {
		"#...",
		"#...",
		"###.",
		"#..#",
		"#..#",
		"#..#",
		"###.",
	},
	'c': {
		"....",
		"....",
		".###",
		"#...",
		"#...",
		"#...",
		".###",
	},
	'd': {
		"...#",
		"...#",
		".###",
		"#..#",
		"#..#",
		"#..#",
		".###",
	},
	'e': {
		"....",
		"....",
		".##.",
		"#..#",
		"####",
		"#...",
		".###",
	},
	'f': {
		".##",
		"#..",
		"###",
		"#..",
		"#..",
		"#..",
		"#..",
	},
	'g': {
		"....",
		".###",
		"#..#",
		"#..#",
		".###",
		"...#",
		"###.",
	},
	'h': {
		"#...",
		"#...",
		"###.",
		"#..#",
		"#..#",
		"#..#",
		"#..#",
	},
	'i': {
		"#",
		".",
		"#",
		"#",
		"#",
		"#",
		"#",
	},
	'j': {
		"..#",
		"...",
		"..#",
		"..#",
		"..#",
		"#.#",
		".#.",
	},
	'k': {
		"#...",
		"#...",
		"#..#",
		"#.#.",
		"##..",
		"#.#.",
		"#..#",
	},
	'l': {
		"#.",
		"#.",
		"#.",
		"#.",
		"#.",
		"#.",
		".#",
	},
	'm': {
		".....",
		".....",
		"##.#.",
		"#.#.#",
		"#.#.#",
		"#.#.#",
		"#.#.#",
	},
	'n': {
		"....",
		"....",
		"###.",
		"#..#",
		"#..#",
		"#..#",
		"#..#",
	},
	'o': {
		"....",
		"....",
		".##.",
		"#..#",
		"#..#",
		"#..#",
		".##.",
	},
	'p': {
		"....",
		"###.",
		"#..#",
		"#..#",
		"###.",
		"#...",
		"#...",
	},
	'q': {
		"....",
		".###",
		"#..#",
		"#..#",
		".###",
		"...#",
		"...#",
	},
	'r': {
		"....",
		"....",
		"#.##",
		"##..",
		"#...",
		"#...",
		"#...",
	},
	's': {
		"....",
		"....",
		".###",
		"#...",
		".##.",
		"...#",
		"###.",
	},
	't': {
		".#.",
		".#.",
		"###",
		".#.",
		".#.",
		".#.",
		"..#",
	},
	'u': {
		"....",
		"....",
		"#..#",
		"#..#",
		"#..#",
		"#..#",
		".###",
	},
	'v': {
		"...",
		"...",
		"#.#",
		"#.#",
		"#.#",
		"#.#",
		".#.",
	},
	'w': {
		".....",
		".....",
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		".#.#.",
	},
	'x': {
		"...",
		"...",
		"#.#",
		"#.#",
		".#.",
		"#.#",
		"#.#",
	},
	'y': {
		"....",
		"....",
		"#..#",
		"#..#",
		".###",
		"...#",
		".##.",
	},
	'z': {
		"....",
		"....",
		"####",
		"...#",
		".##.",
		"#...",
		"####",
	},

	'0': {
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	},
	'1': {
		".#.",
		"##.",
		".#.",
		".#.",
		".#.",
		".#.",
		"###",
	},
	'2': {
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#####",
	},
	'3': {
		"#####",
		"...#.",
		"..#..",
		"...#.",
		"....#",
		"#...#",
		".###.",
	},
	'4': {
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	},
	'5': {
		"#####",
		"#....",
		"####.",
		"....#",
		"....#",
		"#...#",
		".###.",
	},
	'6': {
		"..##.",
		".#...",
		"#....",
		"####.",
		"#...#",
		"#...#",
		".###.",
	},
	'7': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
	},
	'8': {
		".###.",
		"#...#",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	},
	'9': {
		".###.",
		"#...#",
		"#...#",
		".####",
		"....#",
		"...#.",
		".##..",
	},

	' ': {
		"..",
		"..",
		"..",
		"..",
		"..",
		"..",
		"..",
	},
	'!': {
		"#",
		"#",
		"#",
		"#",
		"#",
		".",
		"#",
	},
	'?': {
		".###.",
		"#...#",
		"....#",
		"..##.",
		"..#..",
		".....",
		"..#..",
	},
	'.': {
		".",
		".",
		".",
		".",
		".",
		".",
		"#",
	},
	',': {
		"..",
		"..",
		"..",
		"..",
		"..",
		".#",
		"#.",
	},
	':': {
		".",
		".",
		"#",
		".",
		".",
		"#",
		".",
	},
	';': {
		"..",
		"..",
		".#",
		"..",
		"..",
		".#",
		"#.",
	},
	'\'': {
		"#",
		"#",
		".",
		".",
		".",
		".",
		".",
	},
	'"': {
		"#.#",
		"#.#",
		"...",
		"...",
		"...",
		"...",
		"...",
	},
	'-': {
		"....",
		"....",
		"....",
		"####",
		"....",
		"....",
		"....",
	},
	'_': {
		"....",
		"....",
		"....",
		"....",
		"....",
		"....",
		"####",
	},
	'+': {
		".....",
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
		".....",
	},
	'=': {
		"....",
		"....",
		"####",
		"....",
		"####",
		"....",
		"....",
	},
	'/': {
		"..#",
		"..#",
		".#.",
		".#.",
		".#.",
		"#..",
		"#..",
	},
	'\\': {
		"#..",
		"#..",
		".#.",
		".#.",
		".#.",
		"..#",
		"..#",
	},
	'(': {
		".#",
		"#.",
		"#.",
		"#.",
		"#.",
		"#.",
		".#",
	},
	')': {
		"#.",
		".#",
		".#",
		".#",
		".#",
		".#",
		"#.",
	},
	'[': {
		"##",
		"#.",
		"#.",
		"#.",
		"#.",
		"#.",
		"##",
	},
	']': {
		"##",
		".#",
		".#",
		".#",
		".#",
		".#",
		"##",
	},
	'<': {
		"...",
		"..#",
		".#.",
		"#..",
		".#.",
		"..#",
		"...",
	},
	'>': {
		"...",
		"#..",
		".#.",
		"..#",
		".#.",
		"#..",
		"...",
	},
	'*': {
		".....",
		"..#..",
		"#.#.#",
		".###.",
		"#.#.#",
		"..#..",
		".....",
	},
	'#': {
		".#.#.",
		".#.#.",
		"#####",
		".#.#.",
		"#####",
		".#.#.",
		".#.#.",
	},
	'@': {
		".###.",
		"#...#",
		"#.###",
		"#.#.#",
		"#.##.",
		"#....",
		".###.",
	},
	'&': {
		".##..",
		"#..#.",
		"#..#.",
		".##..",
		"#.#.#",
		"#..#.",
		".##.#",
	},
	'%': {
		"##..#",
		"##..#",
		"...#.",
		"..#..",
		".#...",
		"#..##",
		"#..##",
	},
	'$': {
		"..#..",
		".####",
		"#.#..",
		".###.",
		"..#.#",
		"####.",
		"..#..",
	},
	'^': {
		".#.",
		"#.#",
		"...",
		"...",
		"...",
		"...",
		"...",
	},
	'~': {
		".....",
		".....",
		".#..#",
		"#.#.#",
		"#..#.",
		".....",
		".....",
	},
	'`': {
		"#.",
		".#",
		"..",
		"..",
		"..",
		"..",
		"..",
	},
	'|': {
		"#",
		"#",
		"#",
		"#",
		"#",
		"#",
		"#",
	},
	'{': {
		"..#",
		".#.",
		".#.",
		"#..",
		".#.",
		".#.",
		"..#",
	},
	'}': {
		"#..",
		".#.",
		".#.",
		"..#",
		".#.",
		".#.",
		"#..",
	},
}
