package assistant

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/store"
)

// fakeDoer counts requests and serves canned responses.
type fakeDoer struct {
	calls   atomic.Int64
	status  int
	body    string
	err     error
	release chan struct{} // when set, Do blocks until closed
	lastReq *http.Request
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.calls.Add(1)
	f.lastReq = req
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

const replyBody = `{"choices":[{"message":{"role":"assistant","content":"Here is a tip."}}]}`

func newTestSession(t *testing.T, doer HTTPDoer) *Session {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	client := NewClient("https://api.example.test/chat/completions", "test-model", doer)
	return NewSession(st, client)
}

func TestCredentialGate(t *testing.T) {
	doer := &fakeDoer{body: replyBody}
	s := newTestSession(t, doer)

	err := s.Send(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeCredentialMissing))

	// No network call, no history.
	assert.EqualValues(t, 0, doer.calls.Load())
	assert.Empty(t, s.Messages())
}

func TestSendWithoutClientErrors(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	// Credential-only construction, as the key management CLI uses it.
	s := NewSession(st, nil)
	require.NoError(t, s.SetCredential("pplx-test"))

	err = s.Send(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInternal))
	assert.Empty(t, s.Messages())
	assert.False(t, s.Loading())
}

func TestSendAppendsBothTurns(t *testing.T) {
	doer := &fakeDoer{body: replyBody}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))

	require.NoError(t, s.Send(context.Background(), "give me a productivity tip"))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "give me a productivity tip", msgs[0].Content)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Here is a tip.", msgs[1].Content)
	assert.False(t, s.Loading())

	// Bearer credential on the wire.
	require.NotNil(t, doer.lastReq)
	assert.Equal(t, "Bearer pplx-test", doer.lastReq.Header.Get("Authorization"))
}

func TestBlankSendIsNoOp(t *testing.T) {
	doer := &fakeDoer{body: replyBody}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))

	require.NoError(t, s.Send(context.Background(), "   "))
	assert.EqualValues(t, 0, doer.calls.Load())
	assert.Empty(t, s.Messages())
}

func TestSingleInFlight(t *testing.T) {
	doer := &fakeDoer{body: replyBody, release: make(chan struct{})}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))

	done := make(chan error, 1)
	go func() {
		done <- s.Send(context.Background(), "first")
	}()

	// Wait until the first request is in flight.
	require.Eventually(t, s.Loading, time.Second, time.Millisecond)

	// The second send while loading is a pure no-op, never queued.
	require.NoError(t, s.Send(context.Background(), "second"))

	close(doer.release)
	require.NoError(t, <-done)

	assert.EqualValues(t, 1, doer.calls.Load(), "exactly one network call")
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
}

func TestTransportFailurePreservesInput(t *testing.T) {
	doer := &fakeDoer{status: http.StatusInternalServerError, body: "boom"}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))

	err := s.Send(context.Background(), "question")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTransport))

	// The user message stays in history; no assistant message appears.
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "question", msgs[0].Content)
	assert.False(t, s.Loading(), "loading must reset after failure")
}

func TestMissingContentYieldsFallback(t *testing.T) {
	doer := &fakeDoer{body: `{"choices":[]}`}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))

	require.NoError(t, s.Send(context.Background(), "hello"))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, FallbackReply, msgs[1].Content)
}

func TestMalformedResponseIsTransportError(t *testing.T) {
	doer := &fakeDoer{body: `<html>not json</html>`}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))

	err := s.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTransport))
}

func TestClear(t *testing.T) {
	doer := &fakeDoer{body: replyBody}
	s := newTestSession(t, doer)
	require.NoError(t, s.SetCredential("pplx-test"))
	require.NoError(t, s.Send(context.Background(), "hello"))
	require.NotEmpty(t, s.Messages())

	s.Clear()
	assert.Empty(t, s.Messages())
	assert.True(t, s.HasCredential(), "clear must not touch the credential")
}

func TestSetCredential(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(dir)
	require.NoError(t, err)
	s := NewSession(st, NewClient("https://api.example.test", "m", &fakeDoer{}))

	// Blank input is rejected without writing anything.
	require.Error(t, s.SetCredential("   "))
	assert.False(t, s.HasCredential())

	require.NoError(t, s.SetCredential("  pplx-abc  "))
	assert.True(t, s.HasCredential())

	// The trimmed credential is persisted and restored by a fresh session.
	st2, err := store.Open(dir)
	require.NoError(t, err)
	restored := NewSession(st2, nil)
	assert.True(t, restored.HasCredential())

	var stored string
	require.True(t, st2.Get(CredentialKey, &stored))
	assert.Equal(t, "pplx-abc", stored)
}
