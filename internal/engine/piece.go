package engine

// PieceType identifies one of the seven tetromino shapes.
type PieceType uint8

const (
	PieceQ PieceType = iota // square
	PieceZ
	PieceS
	PieceT
	PieceI
	PieceL
	PieceJ
)

// AllPieceTypes lists every shape in declaration order.
var AllPieceTypes = []PieceType{PieceQ, PieceZ, PieceS, PieceT, PieceI, PieceL, PieceJ}

// String returns the single-letter name of the shape.
func (t PieceType) String() string {
	switch t {
	case PieceQ:
		return "Q"
	case PieceZ:
		return "Z"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceI:
		return "I"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	default:
		return "?"
	}
}

// Rotation is one of four orientations. R0 is the spawn orientation.
type Rotation uint8

const (
	R0 Rotation = iota
	R1
	R2
	R3
)

// Next returns the orientation after one clockwise turn.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

// Color is one of the seven display colors a piece can be drawn with.
type Color uint8

const (
	ColorPink Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorOrange
	ColorLightBlue
	ColorDarkBlue
)

// AllColors lists every piece color in declaration order.
var AllColors = []Color{ColorPink, ColorRed, ColorYellow, ColorGreen, ColorOrange, ColorLightBlue, ColorDarkBlue}

// Hex returns the RGB value of the color as "#rrggbb".
func (c Color) Hex() string {
	switch c {
	case ColorPink:
		return "#cd00cd"
	case ColorRed:
		return "#ff0000"
	case ColorYellow:
		return "#ffff0e"
	case ColorGreen:
		return "#00ff00"
	case ColorOrange:
		return "#ff7800"
	case ColorLightBlue:
		return "#00ffff"
	case ColorDarkBlue:
		return "#0000ac"
	default:
		return "#ffffff"
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorPink:
		return "pink"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorLightBlue:
		return "light_blue"
	case ColorDarkBlue:
		return "dark_blue"
	default:
		return "unknown"
	}
}

// PieceID is the stable identity of a piece on the board. It never changes
// and is never reused for the lifetime of an Engine.
type PieceID uint32

// NoPiece is the zero PieceID; no piece on the board carries it.
const NoPiece PieceID = 0

// Piece is a group of four parts sharing one shape, color and orientation.
// The order of Parts is significant: rotation deltas are applied positionally.
type Piece struct {
	ID       PieceID
	Type     PieceType
	Color    Color
	Rotation Rotation
	Parts    [4]Part
}

type delta struct{ dx, dy int }

// spawnLayouts are part offsets from (startX, 0) for each shape at R0.
var spawnLayouts = [...][4]delta{
	PieceQ: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PieceZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	PieceS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	PieceT: {{0, 1}, {1, 1}, {2, 1}, {1, 0}},
	PieceI: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	PieceL: {{0, 1}, {1, 1}, {2, 1}, {2, 0}},
	PieceJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// rotationDeltas[type][from][part] moves a part from orientation `from` to
// from.Next(). For every shape and part the four deltas sum to zero, so four
// turns bring a piece back to where it started.
var rotationDeltas = [...][4][4]delta{
	PieceQ: {},
	PieceZ: {
		R0: {{2, 0}, {1, 1}, {0, 0}, {-1, 1}},
		R1: {{0, 2}, {-1, 1}, {0, 0}, {-1, -1}},
		R2: {{-2, 0}, {-1, -1}, {0, 0}, {1, -1}},
		R3: {{0, -2}, {1, -1}, {0, 0}, {1, 1}},
	},
	PieceS: {
		R0: {{1, 1}, {0, 2}, {1, -1}, {0, 0}},
		R1: {{-1, 1}, {-2, 0}, {1, 1}, {0, 0}},
		R2: {{-1, -1}, {0, -2}, {-1, 1}, {0, 0}},
		R3: {{1, -1}, {2, 0}, {-1, -1}, {0, 0}},
	},
	PieceT: {
		R0: {{1, -1}, {0, 0}, {-1, 1}, {1, 1}},
		R1: {{1, 1}, {0, 0}, {-1, -1}, {-1, 1}},
		R2: {{-1, 1}, {0, 0}, {1, -1}, {-1, -1}},
		R3: {{-1, -1}, {0, 0}, {1, 1}, {1, -1}},
	},
	PieceI: {
		R0: {{2, -1}, {1, 0}, {0, 1}, {-1, 2}},
		R1: {{1, 2}, {0, 1}, {-1, 0}, {-2, -1}},
		R2: {{-2, 1}, {-1, 0}, {0, -1}, {1, -2}},
		R3: {{-1, -2}, {0, -1}, {1, 0}, {2, 1}},
	},
	PieceL: {
		R0: {{1, -1}, {0, 0}, {-1, 1}, {0, 2}},
		R1: {{1, 1}, {0, 0}, {-1, -1}, {-2, 0}},
		R2: {{-1, 1}, {0, 0}, {1, -1}, {0, -2}},
		R3: {{-1, -1}, {0, 0}, {1, 1}, {2, 0}},
	},
	PieceJ: {
		R0: {{2, 0}, {1, -1}, {0, 0}, {-1, 1}},
		R1: {{0, 2}, {1, 1}, {0, 0}, {-1, -1}},
		R2: {{-2, 0}, {-1, 1}, {0, 0}, {1, -1}},
		R3: {{0, -2}, {-1, -1}, {0, 0}, {1, 1}},
	},
}

// NewPiece creates a piece in spawn orientation with its layout anchored at
// column startX in the top two rows. The returned piece has no ID until the
// engine adopts it.
func NewPiece(t PieceType, startX int, c Color) Piece {
	p := Piece{Type: t, Color: c, Rotation: R0}
	for i, d := range spawnLayouts[t] {
		p.Parts[i] = NewPart(startX+d.dx, d.dy)
	}
	return p
}

// Rotatable reports whether turning the piece changes its shape.
func (p Piece) Rotatable() bool {
	return p.Type != PieceQ
}

// Rotated returns the piece after one turn. Legality is checked by the engine.
func (p Piece) Rotated() Piece {
	if !p.Rotatable() {
		return p
	}
	deltas := rotationDeltas[p.Type][p.Rotation]
	for i := range p.Parts {
		p.Parts[i].X += deltas[i].dx
		p.Parts[i].Y += deltas[i].dy
	}
	p.Rotation = p.Rotation.Next()
	return p
}

// Translated returns the piece shifted by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	for i := range p.Parts {
		p.Parts[i].X += dx
		p.Parts[i].Y += dy
	}
	return p
}

// Cells returns the coordinates of the visible parts.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, 0, len(p.Parts))
	for _, part := range p.Parts {
		if part.Visible {
			cells = append(cells, part.Cell())
		}
	}
	return cells
}

// Alive reports whether any part is still visible.
func (p Piece) Alive() bool {
	for _, part := range p.Parts {
		if part.Visible {
			return true
		}
	}
	return false
}
