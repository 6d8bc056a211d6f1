package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, simulate(context.Background(), &first, 7, true))
	require.NoError(t, simulate(context.Background(), &second, 7, true))

	out := first.String()
	assert.Contains(t, out, "(seed 7)")
	assert.Contains(t, out, "AGENT")
	assert.Contains(t, out, "qualified: ")
	assert.Contains(t, out, "GPT-4")
	// The tournament id carries the date, so only compare the bodies.
	assert.Equal(t, stripHeader(first.String()), stripHeader(second.String()), "same seed must give the same tournament")
}

func TestRequestURL(t *testing.T) {
	host = "http://arena:8080"
	t.Cleanup(func() { host, dryRun = "http://localhost:8080", false })

	dryRun = false
	assert.Equal(t, "http://arena:8080/tournament", requestURL("/tournament"))

	dryRun = true
	assert.Equal(t, "http://arena:8080/tournament?dry_run=true", requestURL("/tournament"))
}

func stripHeader(s string) string {
	var out bytes.Buffer
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		if bytes.Contains(line, []byte("(seed")) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	return out.String()
}
