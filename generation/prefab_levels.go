package generation

import "embed"

//go:embed prefabs/*.xp
var prefabFS embed.FS

// KeepTemplate is the embedded three-wing keep drawn in REXPaint format
const KeepTemplate = "keep.xp"

// GuardedCaveLevel is a small populated level for the constant prefab mode
const GuardedCaveLevel = `
########################################
#@.....#..........##..........#........#
#......#...g......##....%.....#...o....#
#......#..........##..........#........#
#......####..###########..#####........#
#.........................^............#
#......####..###########..#####........#
#......#..........##..........#........#
#..!...#....o.....##....g.....#....>...#
#......#..........##..........#........#
########################################
`
