package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"taskboard/internal/models"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	failing  bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, append([]byte(nil), data...))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Event, 0, len(c.messages))
	for _, m := range c.messages {
		var ev models.Event
		if json.Unmarshal(m, &ev) == nil {
			out = append(out, ev)
		}
	}
	return out
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHub_DeliversOnlyToOwner(t *testing.T) {
	hub, _ := startHub(t)

	alice1, alice2, bob := &fakeConn{}, &fakeConn{}, &fakeConn{}
	require.True(t, hub.Register(NewClient("alice", alice1)))
	require.True(t, hub.Register(NewClient("alice", alice2)))
	require.True(t, hub.Register(NewClient("bob", bob)))
	assert.Equal(t, 2, hub.ClientCount("alice"))

	ev := models.Event{Type: models.EventTaskCreated, BoardID: "b1", TaskID: "t1"}
	hub.Publish("alice", ev)

	assert.Eventually(t, func() bool {
		return len(alice1.received()) == 1 && len(alice2.received()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, ev, alice1.received()[0])

	// give a stray delivery time to show up before asserting absence
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, bob.received())
}

func TestHub_Unregister(t *testing.T) {
	hub, _ := startHub(t)

	conn := &fakeConn{}
	client := NewClient("alice", conn)
	require.True(t, hub.Register(client))
	hub.Unregister(client)

	assert.Eventually(t, func() bool { return hub.ClientCount("alice") == 0 }, time.Second, 10*time.Millisecond)
	assert.True(t, conn.isClosed())

	// unregistering twice is harmless
	hub.Unregister(client)
}

func TestHub_DropsFailingClient(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	hub := NewHub().WithLogger(zap.New(core))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	good, bad := &fakeConn{}, &fakeConn{failing: true}
	require.True(t, hub.Register(NewClient("alice", good)))
	require.True(t, hub.Register(NewClient("alice", bad)))

	hub.Publish("alice", models.Event{Type: models.EventBoardCreated, BoardID: "b1"})

	assert.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 10*time.Millisecond)
	assert.True(t, bad.isClosed())
	assert.Eventually(t, func() bool { return len(good.received()) == 1 }, time.Second, 10*time.Millisecond)

	// the system channel runs at info level, so the failure must be visible there
	failed := logs.FilterMessage("Websocket write failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	// not running: nothing drains the queue
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer*2; i++ {
			hub.Publish("alice", models.Event{Type: models.EventTaskUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}

func TestHub_StopClosesConnections(t *testing.T) {
	hub, cancel := startHub(t)

	conn := &fakeConn{}
	require.True(t, hub.Register(NewClient("alice", conn)))
	cancel()

	assert.Eventually(t, conn.isClosed, time.Second, 10*time.Millisecond)
	assert.False(t, hub.Register(NewClient("alice", &fakeConn{})))
}
