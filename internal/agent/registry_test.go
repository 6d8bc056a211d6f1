package agent

import (
	"context"
	"testing"

	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(AlwaysCooperate{})
	r.Register("villain", AlwaysDefect{})

	assert.True(t, r.Has("villain"))
	assert.False(t, r.Has("stranger"))

	out, err := r.Resolve("villain").Decide(context.Background(), game.AgentInput{Round: 1})
	require.NoError(t, err)
	assert.Equal(t, game.Defect, out.Move)

	out, err = r.Resolve("stranger").Decide(context.Background(), game.AgentInput{Round: 1})
	require.NoError(t, err)
	assert.Equal(t, game.Cooperate, out.Move, "unknown agents fall back to cooperation")
}

func TestNewDefaultRegistry_CoversRoster(t *testing.T) {
	r := NewDefaultRegistry(1)
	for _, p := range Roster() {
		assert.True(t, r.Has(p.ID), "missing strategy for %s", p.ID)
	}
}

func TestRoster(t *testing.T) {
	profiles := Roster()
	require.Len(t, profiles, 6)

	p, ok := Find(profiles, "grok")
	require.True(t, ok)
	assert.Equal(t, "Grok-2", p.Name)

	_, ok = Find(profiles, "nobody")
	assert.False(t, ok)

	// Callers get their own copy.
	profiles[0].Name = "changed"
	assert.NotEqual(t, "changed", Roster()[0].Name)
}

func TestRegisterRemote(t *testing.T) {
	r := NewDefaultRegistry(1)
	roster := Roster()

	roster = r.RegisterRemote(roster, "claude", "http://localhost:9001/decide")
	assert.Len(t, roster, 6, "known agents keep their profile")
	_, isRemote := r.Resolve("claude").(*Remote)
	assert.True(t, isRemote)

	roster = r.RegisterRemote(roster, "mistral", "http://localhost:9002/decide")
	require.Len(t, roster, 7)
	assert.Equal(t, "mistral", roster[6].ID)
	assert.Equal(t, "Remote", roster[6].Style)
	assert.True(t, r.Has("mistral"))
}
