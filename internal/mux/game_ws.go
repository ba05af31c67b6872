package mux

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"casino-server/pkg/texasholdem"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// stateFeed fans game-state snapshots out to websocket subscribers.
// Slow subscribers drop updates rather than block the game.
type stateFeed struct {
	mu          sync.Mutex
	subscribers map[chan *texasholdem.State]bool
}

func newStateFeed() *stateFeed {
	return &stateFeed{
		subscribers: make(map[chan *texasholdem.State]bool),
	}
}

func (f *stateFeed) subscribe() chan *texasholdem.State {
	ch := make(chan *texasholdem.State, 16)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribers[ch] = true

	return ch
}

func (f *stateFeed) unsubscribe(ch chan *texasholdem.State) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribers[ch] {
		delete(f.subscribers, ch)
		close(ch)
	}
}

func (f *stateFeed) broadcast(state *texasholdem.State) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}

// getTexasWS streams hold'em state snapshots over a websocket. The
// client receives the current state on connect (if a round is live) and
// a fresh snapshot after every mutation.
func (m *Mux) getTexasWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		ch := m.texasFeed.subscribe()
		defer func() {
			m.texasFeed.unsubscribe(ch)
			_ = conn.Close()
		}()

		m.texasMu.Lock()
		if m.texas != nil {
			state := m.texas.State()
			select {
			case ch <- state:
			default:
			}
		}
		m.texasMu.Unlock()

		go m.webSocketWriteLoop(conn, ch)
		m.webSocketReadLoop(conn)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, ch chan *texasholdem.State) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case state, ok := <-ch:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(state); err != nil {
				logrus.WithError(err).Error("could not write state to client")
				return
			}
		}
	}
}

// webSocketReadLoop drains the connection so control frames are
// processed; the feed is one-way
func (m *Mux) webSocketReadLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Debug("websocket closed unexpectedly")
			}

			return
		}
	}
}
