package world

// defaultLevel is the built-in 16x16 layout
const defaultLevel = `################
#.....#........#
#.....#........#
#.....#........#
#.....#........#
#.....#........#
#.....#........#
#....##...######
#....#.........#
#..............#
##########.....#
#..............#
#..............#
#..............#
#..............#
################`

// Default returns the built-in level
func Default() *Map {
	return MustParse(defaultLevel)
}
