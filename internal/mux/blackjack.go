package mux

import (
	"net/http"

	"casino-server/pkg/blackjack"
)

var errNoBlackjackRound = blackjack.Error("no active round. Call /blackjack/start first.")

type blackjackStartRequest struct {
	Bet int `json:"bet"`
}

func (m *Mux) postBlackjackStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload blackjackStartRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		m.blackjackMu.Lock()
		defer m.blackjackMu.Unlock()

		game, err := blackjack.NewGame(m.logger, payload.Bet)
		if err != nil {
			writeGameError(w, err)
			return
		}

		m.blackjack = game
		writeJSON(w, http.StatusOK, game.State())
	}
}

func (m *Mux) postBlackjackHit() http.HandlerFunc {
	return m.blackjackMove((*blackjack.Game).Hit)
}

func (m *Mux) postBlackjackStand() http.HandlerFunc {
	return m.blackjackMove((*blackjack.Game).Stand)
}

func (m *Mux) blackjackMove(move func(*blackjack.Game) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.blackjackMu.Lock()
		defer m.blackjackMu.Unlock()

		if m.blackjack == nil {
			writeGameError(w, errNoBlackjackRound)
			return
		}

		if err := move(m.blackjack); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, m.blackjack.State())
	}
}

func (m *Mux) getBlackjackState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.blackjackMu.Lock()
		defer m.blackjackMu.Unlock()

		if m.blackjack == nil {
			writeGameError(w, errNoBlackjackRound)
			return
		}

		writeJSON(w, http.StatusOK, m.blackjack.State())
	}
}
