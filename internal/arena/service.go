package arena

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/mauv0809/neural-dilemma/internal/notifier"
	"github.com/mauv0809/neural-dilemma/internal/pubsub"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

// WithRoundDelay pauses after every round of a daily tournament so viewers
// can follow along. It has no effect on results.
func WithRoundDelay(d time.Duration) Option {
	return func(s *Service) {
		s.roundDelay = d
	}
}

// WithClock overrides time.Now, which decides the daily tournament id.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service for the given participants.
func NewService(orchestrator *tournament.Orchestrator, publisher pubsub.Publisher, notifier notifier.Notifier, participants []agent.Profile, opts ...Option) *Service {
	s := &Service{
		orchestrator: orchestrator,
		publisher:    publisher,
		notifier:     notifier,
		participants: append([]agent.Profile(nil), participants...),
		now:          time.Now,
		history:      []tournament.DailyResult{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Participants returns the arena's agents in tournament order.
func (s *Service) Participants() []agent.Profile {
	return append([]agent.Profile(nil), s.participants...)
}

// StartDaily creates today's tournament and plays it in the background. The
// run outlives ctx; use Reset or Shutdown to stop it.
func (s *Service) StartDaily(ctx context.Context, dryRun bool) (tournament.DailyTournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return tournament.DailyTournament{}, ErrTournamentRunning
	}

	now := s.now()
	t, err := tournament.NewDaily(tournament.DailyID(now), now.Format(time.DateOnly), s.participants)
	if err != nil {
		return tournament.DailyTournament{}, err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.generation++
	s.running = true
	s.cancel = cancel
	s.current = &t
	s.currentMatch = nil

	gen := s.generation
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.runDaily(runCtx, gen, t.Clone(), dryRun)
	}()

	log.Info("Daily tournament scheduled", "tournamentID", t.ID, "participants", len(t.Participants), "dryRun", dryRun)
	return t.Clone(), nil
}

func (s *Service) runDaily(ctx context.Context, gen int, t tournament.DailyTournament, dryRun bool) {
	obs := tournament.Observer{
		OnMatchStart: func(m tournament.Match) {
			s.track(gen, m)
		},
		OnRoundComplete: func(m tournament.Match, _ game.RoundResult) {
			s.track(gen, m)
			s.pace(ctx)
		},
		OnMatchComplete: func(m tournament.Match) {
			s.track(gen, m)
			s.publish(pubsub.EventMatchCompleted, pubsub.NewMatchCompletedEvent(t.ID, m))
		},
	}

	done, err := s.orchestrator.Run(ctx, t, obs)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		log.Info("Discarding result of reset tournament", "tournamentID", t.ID)
		return
	}
	s.running = false
	s.cancel = nil
	s.currentMatch = nil
	if err != nil {
		s.mu.Unlock()
		log.Error("Daily tournament failed", "tournamentID", t.ID, "error", err)
		return
	}
	s.current = &done
	s.recordDay(tournament.DailyResult{Date: done.Date, Standings: done.Standings})
	s.mu.Unlock()

	s.publish(pubsub.EventTournamentCompleted, pubsub.NewTournamentCompletedEvent(done))
	if err := s.notifier.SendTournamentResult(done, dryRun); err != nil {
		log.Error("Failed to send tournament result", "tournamentID", done.ID, "error", err)
	}
}

// track mirrors a match's progress into the live view.
func (s *Service) track(gen int, m tournament.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.current == nil {
		return
	}
	s.current.Status = tournament.StatusInProgress
	for i := range s.current.Matches {
		if s.current.Matches[i].ID == m.ID {
			s.current.Matches[i] = m
			break
		}
	}
	live := m
	s.currentMatch = &live
}

func (s *Service) pace(ctx context.Context) {
	if s.roundDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.roundDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// recordDay keeps the last historyDays results, one per date. Callers hold mu.
func (s *Service) recordDay(day tournament.DailyResult) {
	for i := range s.history {
		if s.history[i].Date == day.Date {
			s.history[i] = day
			return
		}
	}
	s.history = append(s.history, day)
	if len(s.history) > historyDays {
		s.history = s.history[len(s.history)-historyDays:]
	}
}

func (s *Service) publish(topic pubsub.EventType, event any) {
	if err := s.publisher.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish event", "topic", topic, "error", err)
	}
}

// Reset cancels any running tournament and forgets the current one. A run
// that finishes after Reset is discarded.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.running = false
	s.cancel = nil
	s.current = nil
	s.currentMatch = nil
	log.Info("Tournament reset")
}

// Shutdown stops any running tournament and waits for it to exit or for ctx
// to expire.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		IsRunning:    s.running,
		Participants: s.Participants(),
	}
	if s.current != nil {
		t := s.current.Clone()
		snap.Tournament = &t
	}
	if s.currentMatch != nil {
		m := s.currentMatch.Clone()
		snap.CurrentMatch = &m
	}
	return snap
}

// Match returns a match of the current tournament by id.
func (s *Service) Match(matchID string) (tournament.Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return tournament.Match{}, false
	}
	for _, m := range s.current.Matches {
		if m.ID == matchID {
			return m.Clone(), true
		}
	}
	return tournament.Match{}, false
}

func (s *Service) profile(agentID string) (agent.Profile, error) {
	p, ok := agent.Find(s.participants, agentID)
	if !ok {
		return agent.Profile{}, fmt.Errorf("%w: %q", ErrUnknownAgent, agentID)
	}
	return p, nil
}

// PlayMatch plays a single match between two participants outside of any
// tournament and waits for the result.
func (s *Service) PlayMatch(ctx context.Context, player1ID, player2ID string, dryRun bool) (tournament.Match, error) {
	p1, err := s.profile(player1ID)
	if err != nil {
		return tournament.Match{}, err
	}
	p2, err := s.profile(player2ID)
	if err != nil {
		return tournament.Match{}, err
	}
	if p1.ID == p2.ID {
		return tournament.Match{}, ErrSameAgent
	}

	match := tournament.NewMatch("match-"+uuid.NewString(), p1, p2)
	done, err := s.orchestrator.PlayMatch(ctx, match, tournament.Observer{})
	if err != nil {
		return tournament.Match{}, err
	}

	s.publish(pubsub.EventMatchCompleted, pubsub.NewMatchCompletedEvent("", done))
	if err := s.notifier.SendMatchResult(done, dryRun); err != nil {
		log.Error("Failed to send match result", "matchID", done.ID, "error", err)
	}
	return done, nil
}

// Weekly returns the recorded days, the current qualifiers and the last final.
func (s *Service) Weekly() Weekly {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make([]tournament.DailyResult, len(s.history))
	copy(days, s.history)
	w := Weekly{
		Days:       days,
		Qualifiers: tournament.QualifyForWeekly(s.history, s.participants),
	}
	if s.weeklyFinal != nil {
		final := *s.weeklyFinal
		w.LastFinal = &final
	}
	return w
}

// WeeklyQualifiers returns the agents currently qualified for the weekly final.
func (s *Service) WeeklyQualifiers() []tournament.WeeklyStanding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tournament.QualifyForWeekly(s.history, s.participants)
}

// PlayWeeklyFinal plays the weekly final between two agents. With both ids
// empty the two best qualifiers play.
func (s *Service) PlayWeeklyFinal(ctx context.Context, player1ID, player2ID string, dryRun bool) (tournament.WeeklyFinalResult, error) {
	if player1ID == "" && player2ID == "" {
		qualifiers := s.WeeklyQualifiers()
		if len(qualifiers) < 2 {
			return tournament.WeeklyFinalResult{}, fmt.Errorf("%w: have %d", ErrNotEnoughQualifiers, len(qualifiers))
		}
		player1ID, player2ID = qualifiers[0].Agent.ID, qualifiers[1].Agent.ID
	}
	p1, err := s.profile(player1ID)
	if err != nil {
		return tournament.WeeklyFinalResult{}, err
	}
	p2, err := s.profile(player2ID)
	if err != nil {
		return tournament.WeeklyFinalResult{}, err
	}
	if p1.ID == p2.ID {
		return tournament.WeeklyFinalResult{}, ErrSameAgent
	}

	id := "weekly-" + s.now().Format(time.DateOnly)
	result, err := s.orchestrator.RunWeeklyFinal(ctx, id, p1, p2, nil)
	if err != nil {
		return tournament.WeeklyFinalResult{}, err
	}

	s.mu.Lock()
	s.weeklyFinal = &result
	s.mu.Unlock()

	s.publish(pubsub.EventWeeklyFinalCompleted, pubsub.NewWeeklyFinalCompletedEvent(result))
	if err := s.notifier.SendWeeklyFinalResult(result, dryRun); err != nil {
		log.Error("Failed to send weekly final result", "finalID", result.ID, "error", err)
	}
	return result, nil
}
