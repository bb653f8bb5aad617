package game

import "golang.org/x/exp/slices"

// Snapshot is a detached copy of a State. It carries everything a bot needs to
// choose a move but cannot advance the game.
type Snapshot struct {
	Current  int      `json:"player"`
	Actions  []Action `json:"legal_actions"`
	Board    string   `json:"board"`
	Terminal bool     `json:"terminal"`
	Won      int      `json:"winner"`
}

// Detach copies the observable parts of a state.
func Detach(s State) Snapshot {
	return Snapshot{
		Current:  s.Player(),
		Actions:  slices.Clone(s.LegalActions()),
		Board:    s.String(),
		Terminal: s.IsTerminal(),
		Won:      s.Winner(),
	}
}

func (s Snapshot) Player() int            { return s.Current }
func (s Snapshot) LegalActions() []Action { return s.Actions }
func (s Snapshot) IsTerminal() bool       { return s.Terminal }
func (s Snapshot) Winner() int            { return s.Won }
func (s Snapshot) String() string         { return s.Board }

func (s Snapshot) Play(Action) State {
	panic("snapshot is detached from the rule engine and cannot be played")
}
