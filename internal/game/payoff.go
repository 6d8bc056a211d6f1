package game

import "fmt"

// Move is a single player's choice for one round. Only Cooperate and Defect
// exist; the zero value is Defect.
type Move struct {
	cooperate bool
}

var (
	Cooperate = Move{cooperate: true}
	Defect    = Move{}
)

// String returns the long form used in records ("COOPERATE" / "DEFECT").
func (m Move) String() string {
	if m.cooperate {
		return "COOPERATE"
	}
	return "DEFECT"
}

// Short returns the agent protocol form ("C" / "D").
func (m Move) Short() string {
	if m.cooperate {
		return "C"
	}
	return "D"
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMove accepts the long form only.
func ParseMove(s string) (Move, error) {
	switch s {
	case "COOPERATE":
		return Cooperate, nil
	case "DEFECT":
		return Defect, nil
	}
	return Defect, fmt.Errorf("invalid move %q", s)
}

// ParseShortMove accepts the agent protocol form only.
func ParseShortMove(s string) (Move, error) {
	switch s {
	case "C":
		return Cooperate, nil
	case "D":
		return Defect, nil
	}
	return Defect, fmt.Errorf("invalid move %q", s)
}

// payoffs is indexed [player1 cooperates][player2 cooperates].
var payoffs = [2][2][2]int{
	{{1, 1}, {5, 0}}, // player1 defects
	{{0, 5}, {3, 3}}, // player1 cooperates
}

// Score returns the points awarded to each player for one round.
func Score(player1, player2 Move) (int, int) {
	p := payoffs[index(player1)][index(player2)]
	return p[0], p[1]
}

func index(m Move) int {
	if m.cooperate {
		return 1
	}
	return 0
}
