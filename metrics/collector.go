package metrics

import (
	"spiel/game"
	"sync"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int
	Action   game.Action
	Duration time.Duration // Time the bot took to choose
	Fallback bool          // Bot's choice was illegal and replaced
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // game.NoWinner for draws and unfinished games
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Fallbacks      int
}

type Collector interface {
	Start(startingPlayer int)
	AddMove(MoveMetric)
	Complete(winner int) (GameMetric, []MoveMetric)
}

type collector struct {
	mu             sync.Mutex
	startingPlayer int
	startTime      time.Time
	moves          []MoveMetric
	fallbacks      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.moves = nil
	m.fallbacks.Store(0)
}

func (m *collector) AddMove(move MoveMetric) {
	if move.Fallback {
		m.fallbacks.Add(1)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, move)
}

func (m *collector) Complete(winner int) (GameMetric, []MoveMetric) {
	m.mu.Lock()
	defer m.mu.Unlock()
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
		Fallbacks:      int(m.fallbacks.Load()),
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(int)          {}
func (m *dummyCollector) AddMove(MoveMetric) {}
func (m *dummyCollector) Complete(winner int) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner}, nil
}
