package chess

// Direction is a single-square step on the board.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

// Diagonals and Orthogonals are the ray directions of bishops and rooks.
var (
	Diagonals   = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	Orthogonals = []Direction{North, East, South, West}
)

// step describes a direction as a bit shift plus the squares it may not leave.
// A left or right shift past a file boundary would otherwise wrap onto the
// neighbouring rank, so every step carrying an east or west component is
// guarded by the matching file mask.
type step struct {
	shift int
	edge  Bitboard
}

var steps = [NumDirections]step{
	North:     {8, Rank8},
	NorthEast: {9, Rank8 | FileH},
	East:      {1, FileH},
	SouthEast: {-7, Rank1 | FileH},
	South:     {-8, Rank1},
	SouthWest: {-9, Rank1 | FileA},
	West:      {-1, FileA},
	NorthWest: {7, Rank8 | FileA},
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	names := []string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}
	if d >= North && d < NumDirections {
		return names[d]
	}
	return "Unknown"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + NumDirections/2) % NumDirections
}

// Step moves p one square in direction d. The second result is false when
// the step would leave the board.
func (d Direction) Step(p Position) (Position, bool) {
	s := steps[d]
	if p.In(s.edge) {
		return NoPosition, false
	}
	return Position(shift(Bitboard(p), s.shift)), true
}

// Shift moves every square of b one step in direction d, dropping squares
// that would leave the board.
func (d Direction) Shift(b Bitboard) Bitboard {
	s := steps[d]
	return shift(b&^s.edge, s.shift)
}

func shift(b Bitboard, n int) Bitboard {
	if n >= 0 {
		return b << uint(n)
	}
	return b >> uint(-n)
}

// Offset is a compound jump built from single steps, used by knights.
type Offset []Direction

// Apply walks p along every step of the offset. The second result is false
// when any intermediate step would leave the board.
func (o Offset) Apply(p Position) (Position, bool) {
	for _, d := range o {
		var ok bool
		if p, ok = d.Step(p); !ok {
			return NoPosition, false
		}
	}
	return p, true
}

// KnightOffsets are the eight knight jumps, each as an orthogonal step
// followed by a diagonal one so that every edge crossing is caught.
var KnightOffsets = []Offset{
	{North, NorthEast},
	{North, NorthWest},
	{East, NorthEast},
	{East, SouthEast},
	{South, SouthEast},
	{South, SouthWest},
	{West, SouthWest},
	{West, NorthWest},
}

// KingOffsets are the eight king steps.
var KingOffsets = []Offset{
	{North}, {NorthEast}, {East}, {SouthEast},
	{South}, {SouthWest}, {West}, {NorthWest},
}
