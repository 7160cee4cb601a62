package game

// Kind classifies the result of a guess evaluation.
type Kind int

const (
	KindNoNumberEntered Kind = iota // Input coerced to 0 or NaN
	KindWon                         // Guess matched the secret
	KindWrongDirection              // Guess missed, score decremented
	KindLost                        // Guess missed with the score exhausted
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNoNumberEntered:
		return "NoNumberEntered"
	case KindWon:
		return "Won"
	case KindWrongDirection:
		return "WrongDirection"
	case KindLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Direction tells which side of the secret a wrong guess landed on.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionHigh           // Guess exceeds the secret
	DirectionLow            // Guess is below the secret
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionHigh:
		return "High"
	case DirectionLow:
		return "Low"
	default:
		return "None"
	}
}

// Outcome is returned by every guess evaluation.
// Score and HighScore reflect the state after the call.
type Outcome struct {
	Kind         Kind
	Direction    Direction // Set only for KindWrongDirection
	Secret       int       // Set only for KindWon
	Score        int
	HighScore    int
	NewHighScore bool // The win raised the high score
}

// Decided reports whether this outcome ends the round.
func (o Outcome) Decided() bool {
	return o.Kind == KindWon || o.Kind == KindLost
}
