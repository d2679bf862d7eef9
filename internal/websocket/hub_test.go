package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, groupID string) *Client {
	return &Client{hub: h, send: make(chan []byte, 4), groupID: groupID}
}

func receiveMessage(t *testing.T, c *Client) *Message {
	t.Helper()
	select {
	case data := <-c.send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func TestHub_BroadcastsOnlyToGroupClients(t *testing.T) {
	h := NewHub()
	go h.Run()

	watcher := newTestClient(h, "g1")
	other := newTestClient(h, "g2")
	h.register <- watcher
	h.register <- other

	h.BroadcastSeatAssigned("g1", "7", 2)

	msg := receiveMessage(t, watcher)
	assert.Equal(t, MessageTypeSeatAssigned, msg.Type)
	assert.Equal(t, "g1", msg.GroupID)
	require.Len(t, msg.Seats, 1)
	assert.Equal(t, "7", msg.Seats[0].SeatNumber)
	assert.Equal(t, 2, msg.Seats[0].PassengerID)

	select {
	case <-other.send:
		t.Fatal("client of another group received the message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_PassesGeneratedCarriesCount(t *testing.T) {
	h := NewHub()
	go h.Run()

	watcher := newTestClient(h, "g1")
	h.register <- watcher

	h.BroadcastPassesGenerated("g1", 3)

	msg := receiveMessage(t, watcher)
	assert.Equal(t, MessageTypePassesGenerated, msg.Type)
	assert.Equal(t, 3, msg.Count)

	h.BroadcastPassesSent("g1")
	msg = receiveMessage(t, watcher)
	assert.Equal(t, MessageTypePassesSent, msg.Type)
	assert.Zero(t, msg.Count)
}
