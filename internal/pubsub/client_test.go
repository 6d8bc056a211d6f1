package pubsub

import (
	"context"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func setupTestClient(t *testing.T) (*client, *pstest.Server, *metrics.Mock) {
	t.Helper()
	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	ctx := context.Background()
	psClient, err := pubsub.NewClient(ctx, "test-project", option.WithGRPCConn(conn))
	require.NoError(t, err)

	m := metrics.NewMock()
	c := newWithClient(psClient, m)
	t.Cleanup(func() { c.Close() })
	return c, srv, m
}

func TestClient_EnsureTopics(t *testing.T) {
	c, _, _ := setupTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.EnsureTopics(ctx))
	// Existing topics are left alone.
	require.NoError(t, c.EnsureTopics(ctx))

	for _, topic := range Topics {
		exists, err := c.client.Topic(string(topic)).Exists(ctx)
		require.NoError(t, err)
		assert.True(t, exists, "topic %s", topic)
	}
}

func TestClient_SendMessage(t *testing.T) {
	c, srv, m := setupTestClient(t)
	require.NoError(t, c.EnsureTopics(context.Background()))

	event := MatchCompletedEvent{
		EventID:      "evt-1",
		MatchID:      "match-1",
		Player1ID:    "grok",
		Player2ID:    "claude",
		Player1Score: 11,
		Player2Score: 6,
		Winner:       "player1",
		WinningIndex: WinningIndexPlayer1,
	}
	require.NoError(t, c.SendMessage(EventMatchCompleted, event))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, string(EventMatchCompleted), msgs[0].Attributes["event"])

	var decoded MatchCompletedEvent
	require.NoError(t, msgpack.Unmarshal(msgs[0].Data, &decoded))
	assert.Equal(t, event.MatchID, decoded.MatchID)
	assert.Equal(t, event.WinningIndex, decoded.WinningIndex)
	assert.Equal(t, 11, decoded.Player1Score)
	assert.Equal(t, 1, m.EventsPublished())
	assert.Equal(t, 0, m.EventsFailed())
}

func TestClient_SendMessageMissingTopic(t *testing.T) {
	c, _, m := setupTestClient(t)

	err := c.SendMessage(EventTournamentCompleted, TournamentCompletedEvent{TournamentID: "t"})
	assert.Error(t, err)
	assert.Equal(t, 0, m.EventsPublished())
	assert.Equal(t, 1, m.EventsFailed())
}

func TestDisabled(t *testing.T) {
	p := NewDisabled()
	assert.NoError(t, p.SendMessage(EventMatchCompleted, MatchCompletedEvent{}))
	assert.NoError(t, p.Close())
}
