package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil evaluation service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingEvaluationService)
	})

	t.Run("evaluation only creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Evaluation: &mockEvaluationService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingEvaluationService)
	assert.ErrorIs(t, (&Ports{Candidate: &mockCandidateService{}}).Validate(), ErrMissingEvaluationService)
	assert.NoError(t, (&Ports{Evaluation: &mockEvaluationService{}}).Validate())
	assert.NoError(t, (&Ports{
		Evaluation: &mockEvaluationService{},
		Candidate:  &mockCandidateService{},
	}).Validate())
}

func TestServer_SetPorts(t *testing.T) {
	first := &mockEvaluationService{}
	server, err := NewServer(&Ports{Evaluation: first})
	require.NoError(t, err)
	assert.Same(t, first, server.Ports().Evaluation)

	t.Run("rejects missing evaluation service", func(t *testing.T) {
		err := server.SetPorts(&Ports{Candidate: &mockCandidateService{}})
		assert.ErrorIs(t, err, ErrMissingEvaluationService)
		assert.Same(t, first, server.Ports().Evaluation)
	})

	t.Run("later requests use the new ports", func(t *testing.T) {
		second := &mockEvaluationService{}
		cand := &mockCandidateService{pairs: []domain.StrokePair{{First: 10, Second: 7}}}
		require.NoError(t, server.SetPorts(&Ports{Evaluation: second, Candidate: cand}))

		assert.Same(t, second, server.Ports().Evaluation)
		_, out, err := server.handleStrokePairs(context.Background(), nil, StrokePairsInput{SurnameStrokes: 8})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
	})
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Evaluation: &mockEvaluationService{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.RunHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
