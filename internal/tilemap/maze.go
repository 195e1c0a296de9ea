package tilemap

// defaultMaze is the original arcade board.
var defaultMaze = []string{
	"####################",
	"#........##........#",
	"#.####...##...####.#",
	"#..................#",
	"#.####.#.##.#.####.#",
	"#......#....#......#",
	"######.#.##.#.######",
	"     #.#.##.#.#     ",
	"######.#.##.#.######",
	"#........##........#",
	"#.####...##...####.#",
	"#......#....#......#",
	"####################",
}
