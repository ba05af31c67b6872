package mux

import (
	"net/http"

	"casino-server/pkg/texasholdem"
)

var errNoTexasRound = texasholdem.Error("no active round. Call /texas/single/start first.")

type texasStartRequest struct {
	PlayerBankroll int `json:"playerBankroll"`
	CPUBankroll    int `json:"cpuBankroll"`
	CPUPlayers     int `json:"cpuPlayers"`
	Bet            int `json:"bet"`
}

type texasActionRequest struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// options fills in the defaults for fields the request left out.
// Explicit bad values still reach validation.
func (t texasStartRequest) options() texasholdem.Options {
	opts := texasholdem.DefaultOptions()
	if t.PlayerBankroll != 0 {
		opts.PlayerBankroll = t.PlayerBankroll
	}
	if t.CPUBankroll != 0 {
		opts.CPUBankroll = t.CPUBankroll
	}
	if t.CPUPlayers != 0 {
		opts.CPUCount = t.CPUPlayers
	}
	if t.Bet != 0 {
		opts.Blind = t.Bet
	}

	return opts
}

func (m *Mux) postTexasSingleStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload texasStartRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		m.texasMu.Lock()
		defer m.texasMu.Unlock()

		game, err := texasholdem.NewGame(m.logger, payload.options())
		if err != nil {
			writeGameError(w, err)
			return
		}

		m.texas = game
		state := game.State()
		m.texasFeed.broadcast(state)
		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postTexasSingleAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload texasActionRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		action, err := texasholdem.ActionFromString(payload.Action)
		if err != nil {
			writeGameError(w, err)
			return
		}

		m.texasMu.Lock()
		defer m.texasMu.Unlock()

		if m.texas == nil {
			writeGameError(w, errNoTexasRound)
			return
		}

		if err := m.texas.PlayerAction(action, payload.Amount); err != nil {
			writeGameError(w, err)
			return
		}

		state := m.texas.State()
		m.texasFeed.broadcast(state)
		writeJSON(w, http.StatusOK, state)
	}
}

// postTexasStage serves the explicit stage-advance endpoints (flop, turn,
// river, showdown)
func (m *Mux) postTexasStage(advance func(*texasholdem.Game) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.texasMu.Lock()
		defer m.texasMu.Unlock()

		if m.texas == nil {
			writeGameError(w, errNoTexasRound)
			return
		}

		if err := advance(m.texas); err != nil {
			writeGameError(w, err)
			return
		}

		state := m.texas.State()
		m.texasFeed.broadcast(state)
		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) getTexasState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.texasMu.Lock()
		defer m.texasMu.Unlock()

		if m.texas == nil {
			writeGameError(w, errNoTexasRound)
			return
		}

		writeJSON(w, http.StatusOK, m.texas.State())
	}
}
