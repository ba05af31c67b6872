package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"casino-server/pkg/texasholdem"
)

func TestTexasWS_receivesStateUpdates(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/texas/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer conn.Close()

	// give the handler a moment to register the subscription
	time.Sleep(time.Millisecond * 100)

	var state texasholdem.State
	assertPost(t, ts, "/texas/single/start", texasStartRequest{CPUPlayers: 1}, &state, 200)

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	var pushed texasholdem.State
	a.NoError(conn.ReadJSON(&pushed))
	a.Equal(state.RoundID, pushed.RoundID)
	a.Equal(15, pushed.Pot)
	a.Equal(texasholdem.StagePreflop, pushed.Stage)
}

func TestTexasWS_snapshotOnConnect(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var state texasholdem.State
	assertPost(t, ts, "/texas/single/start", texasStartRequest{CPUPlayers: 1}, &state, 200)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/texas/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	var pushed texasholdem.State
	a.NoError(conn.ReadJSON(&pushed))
	a.Equal(state.RoundID, pushed.RoundID)
}

func TestStateFeed(t *testing.T) {
	a := assert.New(t)

	feed := newStateFeed()
	ch := feed.subscribe()

	feed.broadcast(&texasholdem.State{Pot: 42})
	select {
	case state := <-ch:
		a.Equal(42, state.Pot)
	default:
		a.Fail("expected a state on the channel")
	}

	// unsubscribing twice is safe
	feed.unsubscribe(ch)
	feed.unsubscribe(ch)
	_, ok := <-ch
	a.False(ok)

	// broadcasting with no subscribers is a no-op
	feed.broadcast(&texasholdem.State{})
}
