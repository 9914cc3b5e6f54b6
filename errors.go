package gofocus

// ErrorKind is the reason an action was rejected. Its Error text is the
// wording players have always seen, so it can be shown as is.
type ErrorKind int

// Rejection reasons.
const (
	ErrInvalidLocation ErrorKind = iota + 1
	ErrInvalidNumberOfPieces
	ErrNotYourTurn
	ErrNoPiecesInReserve
	ErrUnknownPlayer
	ErrGameOver
)

var errorText = map[ErrorKind]string{
	ErrInvalidLocation:       "invalid location",
	ErrInvalidNumberOfPieces: "invalid number of pieces",
	ErrNotYourTurn:           "not your turn",
	ErrNoPiecesInReserve:     "no pieces in reserve",
	ErrUnknownPlayer:         "unknown player",
	ErrGameOver:              "game is over",
}

var errorCodes = map[ErrorKind]string{
	ErrInvalidLocation:       "invalid_location",
	ErrInvalidNumberOfPieces: "invalid_number_of_pieces",
	ErrNotYourTurn:           "invalid_player_turn",
	ErrNoPiecesInReserve:     "no_pieces_in_reserve",
	ErrUnknownPlayer:         "unknown_player",
	ErrGameOver:              "game_over",
}

func (k ErrorKind) Error() string {
	if s, ok := errorText[k]; ok {
		return s
	}
	return "unknown error"
}

// Code is a stable snake_case identifier for the kind, used as a metrics
// label and in logs.
func (k ErrorKind) Code() string {
	if s, ok := errorCodes[k]; ok {
		return s
	}
	return "unknown"
}
