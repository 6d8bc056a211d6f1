package arena

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/notifier"
	"github.com/mauv0809/neural-dilemma/internal/pubsub"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

var (
	ErrTournamentRunning   = errors.New("tournament already running")
	ErrUnknownAgent        = errors.New("unknown agent")
	ErrSameAgent           = errors.New("an agent cannot play itself")
	ErrNotEnoughQualifiers = errors.New("not enough weekly qualifiers")
)

// historyDays is how many daily results count towards weekly qualification.
const historyDays = 7

// Service owns the lifecycle of the arena's tournaments. It is safe for
// concurrent use.
type Service struct {
	orchestrator *tournament.Orchestrator
	publisher    pubsub.Publisher
	notifier     notifier.Notifier
	participants []agent.Profile
	roundDelay   time.Duration
	now          func() time.Time

	mu           sync.Mutex
	current      *tournament.DailyTournament
	currentMatch *tournament.Match
	running      bool
	generation   int
	cancel       context.CancelFunc
	history      []tournament.DailyResult
	weeklyFinal  *tournament.WeeklyFinalResult
	wg           sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// Snapshot is the externally visible state of the daily tournament.
type Snapshot struct {
	Tournament   *tournament.DailyTournament `json:"tournament"`
	CurrentMatch *tournament.Match           `json:"currentMatch"`
	IsRunning    bool                        `json:"isRunning"`
	Participants []agent.Profile             `json:"participants"`
}

// Weekly is the externally visible state of the weekly cycle.
type Weekly struct {
	Days       []tournament.DailyResult      `json:"days"`
	Qualifiers []tournament.WeeklyStanding   `json:"qualifiers"`
	LastFinal  *tournament.WeeklyFinalResult `json:"lastFinal"`
}
