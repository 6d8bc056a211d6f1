package agent

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/game"
)

// Registry maps agent ids to strategies. Unknown ids resolve to the fallback.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]game.Strategy
	fallback   game.Strategy
}

// NewRegistry creates an empty Registry that resolves unknown ids to fallback.
func NewRegistry(fallback game.Strategy) *Registry {
	return &Registry{
		strategies: make(map[string]game.Strategy),
		fallback:   fallback,
	}
}

// NewDefaultRegistry registers the built-in strategy of every roster agent.
// Randomised strategies each get their own source derived from seed.
func NewDefaultRegistry(seed int64) *Registry {
	r := NewRegistry(AlwaysCooperate{})
	r.Register("chatgpt", AdaptiveTitForTat{})
	r.Register("claude", ForgivingCooperator{})
	r.Register("gemini", PatternAnalyzer{})
	r.Register("deepseek", GameTheoryOptimal{})
	r.Register("llama", NewRandomCooperator(rand.New(rand.NewSource(seed))))
	r.Register("grok", NewAggressiveDefector(rand.New(rand.NewSource(seed+1))))
	return r
}

// Register binds a strategy to an agent id, replacing any previous binding.
func (r *Registry) Register(agentID string, strategy game.Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[agentID] = strategy
}

// Resolve returns the strategy for agentID, or the fallback.
func (r *Registry) Resolve(agentID string) game.Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.strategies[agentID]; ok {
		return s
	}
	log.Warn("Unknown agent, using fallback strategy", "agentID", agentID)
	return r.fallback
}

// Has reports whether agentID has its own strategy.
func (r *Registry) Has(agentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.strategies[agentID]
	return ok
}

// RegisterRemote routes agentID to an HTTP agent at endpoint and returns
// roster with a profile for agentID, adding a generic one if it is new.
func (r *Registry) RegisterRemote(roster []Profile, agentID, endpoint string) []Profile {
	r.Register(agentID, NewRemote(endpoint, nil))
	log.Info("Registered remote agent", "agentID", agentID, "url", endpoint)
	if _, ok := Find(roster, agentID); ok {
		return roster
	}
	return append(roster, Profile{
		ID:          agentID,
		Name:        agentID,
		ShortName:   agentID,
		Color:       "#888888",
		Style:       "Remote",
		Description: "Moves decided by an external agent.",
	})
}
