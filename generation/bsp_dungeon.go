package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// bspNode represents a node in the binary space partitioning tree
type bspNode struct {
	X, Y, Width, Height int
	Left, Right         *bspNode
	Room                *components.Rect
}

func (node *bspNode) isLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// split recursively divides the node, alternating the axis at each level.
// When the preferred axis is too short the other one is tried; a node
// that fits neither stays a leaf.
func (node *bspNode) split(rng *random.RNG, minSize int, horizontal bool) {
	canSplitH := node.Height >= 2*minSize
	canSplitV := node.Width >= 2*minSize
	if horizontal && !canSplitH {
		horizontal = false
	} else if !horizontal && !canSplitV {
		horizontal = true
	}
	if (horizontal && !canSplitH) || (!horizontal && !canSplitV) {
		return
	}

	if horizontal {
		splitPos := minSize + rng.Range(0, node.Height-2*minSize+1)
		node.Left = &bspNode{X: node.X, Y: node.Y, Width: node.Width, Height: splitPos}
		node.Right = &bspNode{X: node.X, Y: node.Y + splitPos, Width: node.Width, Height: node.Height - splitPos}
	} else {
		splitPos := minSize + rng.Range(0, node.Width-2*minSize+1)
		node.Left = &bspNode{X: node.X, Y: node.Y, Width: splitPos, Height: node.Height}
		node.Right = &bspNode{X: node.X + splitPos, Y: node.Y, Width: node.Width - splitPos, Height: node.Height}
	}

	node.Left.split(rng, minSize, !horizontal)
	node.Right.split(rng, minSize, !horizontal)
}

// leaves returns the leaf nodes left to right
func (node *bspNode) leaves() []*bspNode {
	if node.isLeaf() {
		return []*bspNode{node}
	}
	return append(node.Left.leaves(), node.Right.leaves()...)
}

// firstRoom returns the room of the leftmost leaf that has one
func (node *bspNode) firstRoom() *components.Rect {
	if node.isLeaf() {
		return node.Room
	}
	if room := node.Left.firstRoom(); room != nil {
		return room
	}
	return node.Right.firstRoom()
}

// newBSPRoot covers the map minus its outer wall
func newBSPRoot(width, height int) *bspNode {
	return &bspNode{X: 1, Y: 1, Width: width - 2, Height: height - 2}
}

// BspDungeonBuilder splits the map into a partition tree, carves one room
// per leaf and connects sibling subtrees with corridors
type BspDungeonBuilder struct {
	MinSize int // Smallest region a split may produce
}

// NewBspDungeonBuilder creates a BSP dungeon builder with the default region size
func NewBspDungeonBuilder() *BspDungeonBuilder {
	return &BspDungeonBuilder{MinSize: 10}
}

// BuildMap implements InitialBuilder
func (b *BspDungeonBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	root := newBSPRoot(build.Width, build.Height)
	root.split(rng, b.MinSize, rng.Roll(1, 2) == 1)

	var rooms []components.Rect
	for _, leaf := range root.leaves() {
		room := b.roomInLeaf(rng, leaf)
		if room == nil {
			continue
		}
		leaf.Room = room
		applyRoom(build.Map, *room)
		rooms = append(rooms, *room)
		build.TakeSnapshot()
	}

	b.connect(rng, build.Map, root)
	build.TakeSnapshot()

	build.SetRooms(rooms)
	return nil
}

// roomInLeaf picks a padded room inside the leaf, or nil if it is too small
func (b *BspDungeonBuilder) roomInLeaf(rng *random.RNG, leaf *bspNode) *components.Rect {
	const minRoom = 4
	if leaf.Width-2 < minRoom || leaf.Height-2 < minRoom {
		return nil
	}

	w := rng.Range(minRoom, leaf.Width-1)
	h := rng.Range(minRoom, leaf.Height-1)
	x := leaf.X + rng.Range(0, leaf.Width-w-1)
	y := leaf.Y + rng.Range(0, leaf.Height-h-1)
	room := components.NewRect(x, y, w, h)
	return &room
}

// connect joins the first room of each pair of sibling subtrees, bottom up
func (b *BspDungeonBuilder) connect(rng *random.RNG, m *components.Map, node *bspNode) {
	if node.isLeaf() {
		return
	}
	b.connect(rng, m, node.Left)
	b.connect(rng, m, node.Right)

	leftRoom := node.Left.firstRoom()
	rightRoom := node.Right.firstRoom()
	if leftRoom == nil || rightRoom == nil {
		return
	}
	x1, y1 := leftRoom.Center()
	x2, y2 := rightRoom.Center()
	applyLCorridor(rng, m, x1, y1, x2, y2)
}
