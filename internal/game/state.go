package game

// State is the session phase. Exactly one holds at a time.
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateWin:
		return "win"
	}
	return "unknown"
}

// Terminal reports whether play is suspended until a reset.
func (s State) Terminal() bool { return s == StateGameOver || s == StateWin }

// Banner returns the headline shown for a terminal state.
func (s State) Banner() string {
	switch s {
	case StateGameOver:
		return "GAME OVER"
	case StateWin:
		return "YOU WIN"
	}
	return ""
}

// RestartHint is shown under terminal banners.
const RestartHint = "Press R to restart"

// nextState evaluates the terminal transitions. Losing the last life wins
// over clearing the field when both happen in the same tick.
func nextState(cur State, lives, enemies int) State {
	if cur != StatePlaying {
		return cur
	}
	if lives < 0 {
		return StateGameOver
	}
	if enemies < 1 {
		return StateWin
	}
	return StatePlaying
}
