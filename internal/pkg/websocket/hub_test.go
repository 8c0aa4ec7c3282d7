package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/app/models/dto"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func newTestClient(hub *Hub, sessionID string, buffer int) *Client {
	return &Client{hub: hub, send: make(chan []byte, buffer), sessionID: sessionID, logger: zerolog.Nop()}
}

func receive(t *testing.T, c *Client) dto.SessionUpdate {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var update dto.SessionUpdate
		require.NoError(t, json.Unmarshal(msg, &update))
		return update
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		return dto.SessionUpdate{}
	}
}

func TestPublishReachesOnlyThatSession(t *testing.T) {
	hub, _ := startHub(t)

	a := newTestClient(hub, "s1", 4)
	b := newTestClient(hub, "s2", 4)
	require.True(t, hub.Register(a))
	require.True(t, hub.Register(b))
	require.Eventually(t, func() bool { return hub.ClientsCount("s1") == 1 && hub.ClientsCount("s2") == 1 }, time.Second, time.Millisecond)

	hub.PublishState(models.SessionState{ID: "s1", Revision: 3, Result: &models.CalculationResult{CurrentTermIndex: "8.86"}})

	update := receive(t, a)
	assert.Equal(t, dto.UpdateTypeState, update.Type)
	assert.Equal(t, "s1", update.SessionID)
	require.NotNil(t, update.Session)
	assert.Equal(t, uint64(3), update.Session.Revision)
	require.NotNil(t, update.Session.Result)
	assert.Equal(t, "8.86", update.Session.Result.SPI)

	assert.Empty(t, b.send)
}

func TestPublishWithoutSubscribersIsDropped(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// Hub not running; must not block
	hub.PublishState(models.SessionState{ID: "nobody"})
	assert.Empty(t, hub.broadcast)
}

func TestUnregisterClosesSend(t *testing.T) {
	hub, _ := startHub(t)

	c := newTestClient(hub, "s1", 1)
	require.True(t, hub.Register(c))
	hub.Unregister(c)

	require.Eventually(t, func() bool { return hub.ClientsCount("s1") == 0 }, time.Second, time.Millisecond)
	_, ok := <-c.send
	assert.False(t, ok)

	// A second unregister is harmless
	hub.Unregister(c)
}

func TestSlowClientIsDropped(t *testing.T) {
	hub, _ := startHub(t)

	c := newTestClient(hub, "s1", 1)
	require.True(t, hub.Register(c))
	require.Eventually(t, func() bool { return hub.ClientsCount("s1") == 1 }, time.Second, time.Millisecond)

	hub.PublishState(models.SessionState{ID: "s1", Revision: 1, Version: 1})
	require.Eventually(t, func() bool { return len(c.send) == 1 }, time.Second, time.Millisecond)
	hub.PublishState(models.SessionState{ID: "s1", Revision: 2, Version: 2})

	assert.Eventually(t, func() bool { return hub.ClientsCount("s1") == 0 }, time.Second, time.Millisecond)
}

func TestStoppedHubRejectsRegistration(t *testing.T) {
	hub, cancel := startHub(t)

	c := newTestClient(hub, "s1", 1)
	require.True(t, hub.Register(c))
	require.Eventually(t, func() bool { return hub.ClientsCount("s1") == 1 }, time.Second, time.Millisecond)

	cancel()

	assert.Eventually(t, func() bool { return hub.ClientsCount("s1") == 0 }, time.Second, time.Millisecond)
	assert.False(t, hub.Register(newTestClient(hub, "s1", 1)))
	hub.Unregister(c)
}

func TestRegisterIsImmediate(t *testing.T) {
	hub, _ := startHub(t)

	c := newTestClient(hub, "s1", 1)
	require.True(t, hub.Register(c))
	assert.Equal(t, 1, hub.ClientsCount("s1"))
}

func TestStaleUpdatesAreSkipped(t *testing.T) {
	hub, _ := startHub(t)

	c := newTestClient(hub, "s1", 8)
	require.True(t, hub.Register(c))

	require.True(t, hub.SendState(c, models.SessionState{ID: "s1", Version: 5}))
	assert.Equal(t, uint64(5), receive(t, c).Session.Version)

	// Older and equal versions never overwrite what the client already has
	hub.PublishState(models.SessionState{ID: "s1", Version: 4})
	hub.PublishState(models.SessionState{ID: "s1", Version: 5})
	hub.PublishState(models.SessionState{ID: "s1", Version: 6})
	assert.Equal(t, uint64(6), receive(t, c).Session.Version)

	assert.True(t, hub.SendState(c, models.SessionState{ID: "s1", Version: 3}))
	assert.Empty(t, c.send)
}

func TestSendStateToUnregisteredClient(t *testing.T) {
	hub, _ := startHub(t)

	c := newTestClient(hub, "s1", 1)
	assert.False(t, hub.SendState(c, models.SessionState{ID: "s1", Version: 1}))
	assert.Empty(t, c.send)
}

func TestCloseSessionDisconnectsClients(t *testing.T) {
	hub, _ := startHub(t)

	a := newTestClient(hub, "s1", 4)
	b := newTestClient(hub, "s1", 4)
	other := newTestClient(hub, "s2", 4)
	for _, c := range []*Client{a, b, other} {
		require.True(t, hub.Register(c))
	}

	hub.CloseSession("s1")
	assert.Equal(t, 0, hub.ClientsCount("s1"))
	assert.Equal(t, 1, hub.ClientsCount("s2"))

	for _, c := range []*Client{a, b} {
		update := receive(t, c)
		assert.Equal(t, dto.UpdateTypeClosed, update.Type)
		assert.Nil(t, update.Session)
		_, ok := <-c.send
		assert.False(t, ok)
	}

	// Closing an unknown or already closed session is a no-op
	hub.CloseSession("s1")
	hub.CloseSession("missing")
	hub.Unregister(a)
}
