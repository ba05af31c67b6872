package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"casino-server/pkg/blackjack"
	"casino-server/pkg/texasholdem"
)

// Mux handles HTTP requests.
//
// One hand of Texas Hold'em and one hand of blackjack are live at a
// time; each is guarded by its own mutex so every request mutates the
// round atomically.
type Mux struct {
	*gmux.Router
	version string
	logger  logrus.FieldLogger

	texasMu   sync.Mutex
	texas     *texasholdem.Game
	texasFeed *stateFeed

	blackjackMu sync.Mutex
	blackjack   *blackjack.Game
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		logger:    logrus.StandardLogger(),
		texasFeed: newStateFeed(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	{
		r.Methods(http.MethodPost).Path("/texas/single/start").Handler(this.postTexasSingleStart())
		r.Methods(http.MethodPost).Path("/texas/single/action").Handler(this.postTexasSingleAction())
		r.Methods(http.MethodPost).Path("/texas/flop").Handler(this.postTexasStage((*texasholdem.Game).DealFlop))
		r.Methods(http.MethodPost).Path("/texas/turn").Handler(this.postTexasStage((*texasholdem.Game).DealTurn))
		r.Methods(http.MethodPost).Path("/texas/river").Handler(this.postTexasStage((*texasholdem.Game).DealRiver))
		r.Methods(http.MethodPost).Path("/texas/showdown").Handler(this.postTexasStage((*texasholdem.Game).Showdown))
		r.Methods(http.MethodGet).Path("/texas/state").Handler(this.getTexasState())
		r.Methods(http.MethodGet).Path("/texas/ws").Handler(this.getTexasWS())
	}

	{
		r.Methods(http.MethodPost).Path("/blackjack/start").Handler(this.postBlackjackStart())
		r.Methods(http.MethodPost).Path("/blackjack/hit").Handler(this.postBlackjackHit())
		r.Methods(http.MethodPost).Path("/blackjack/stand").Handler(this.postBlackjackStand())
		r.Methods(http.MethodGet).Path("/blackjack/state").Handler(this.getBlackjackState())
	}

	return this
}
