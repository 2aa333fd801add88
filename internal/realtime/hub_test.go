package realtime

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	messages [][]byte
}

func (c *fakeClient) Send(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
	return true
}

func (c *fakeClient) Close() {}

func (c *fakeClient) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	h := &Hub{clients: make(map[Client]struct{})}
	a := &fakeClient{}
	b := &fakeClient{}
	h.Register(a)
	h.Register(b)

	h.Broadcast(EventSensorArchived, 7)

	for _, c := range []*fakeClient{a, b} {
		msgs := c.received()
		require.Len(t, msgs, 1)

		var evt Event
		require.NoError(t, json.Unmarshal(msgs[0], &evt))
		require.Equal(t, EventSensorArchived, evt.Type)
		require.Equal(t, 7, evt.ID)
	}
}

func TestHub_UnregisteredClientStopsReceiving(t *testing.T) {
	h := &Hub{clients: make(map[Client]struct{})}
	c := &fakeClient{}
	h.Register(c)
	h.Unregister(c)

	h.Broadcast(EventSensorCreated, 1)
	require.Empty(t, c.received())
}
