package samples

// Piece is a chess piece. It carries the editable item marker, so a form for
// a type with a Piece field embeds a sub-form for it.
type Piece int

const (
	Pawn Piece = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

var pieceNames = [...]string{"PAWN", "ROOK", "KNIGHT", "BISHOP", "QUEEN", "KING"}

var piecePoints = [...]int{1, 5, 3, 3, 9, 1000}

func (p Piece) String() string {
	if p < 0 || int(p) >= len(pieceNames) {
		return "UNKNOWN"
	}
	return pieceNames[p]
}

// Points returns the material value of the piece.
func (p Piece) Points() int {
	if p < 0 || int(p) >= len(piecePoints) {
		return 0
	}
	return piecePoints[p]
}

// FormItem marks Piece as an editable item.
func (Piece) FormItem() {}

// FormOptions lists every piece in declaration order.
func (Piece) FormOptions() []any {
	out := make([]any, 0, len(pieceNames))
	for p := Pawn; p <= King; p++ {
		out = append(out, p)
	}
	return out
}
