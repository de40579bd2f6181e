package net

import (
	"github.com/AryavP/AntBridge/internal/feed"
	"github.com/AryavP/AntBridge/internal/game"
)

// Message types for the JSON protocol over TCP. Clients send commands, never
// state: the server owns the only engine and every mutation goes through it.

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "join" (initial handshake)
	Name string `json:"name,omitempty"`

	// Command payloads. Which fields matter depends on Type.
	Card      string        `json:"card,omitempty"`
	Objective string        `json:"objective,omitempty"`
	Target    string        `json:"target,omitempty"`
	Cards     []string      `json:"cards,omitempty"`
	Power     int           `json:"power,omitempty"`
	EventID   string        `json:"eventId,omitempty"`
	Ants      []game.AntRef `json:"ants,omitempty"`
}

// Command types a client may send after joining.
const (
	CmdPlay             = "play"
	CmdPlayForAttack    = "play_attack"
	CmdPlace            = "place"
	CmdBuy              = "buy"
	CmdAttack           = "attack"
	CmdAttackWithPower  = "attack_power"
	CmdEndTurn          = "end_turn"
	CmdCompleteScout    = "complete_scout"
	CmdCancelScout      = "cancel_scout"
	CmdCompleteDiscard  = "complete_discard"
	CmdCompleteSabotage = "complete_sabotage"
	CmdCompleteTrash    = "complete_trash"
)

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "welcome"
	PlayerID string `json:"playerId,omitempty"`
	GameID   string `json:"gameId,omitempty"`

	// For "result" (reply to the sender's own command)
	Result *game.Result `json:"result,omitempty"`

	// For "state" (broadcast after every successful command)
	State *game.Snapshot `json:"state,omitempty"`

	// For "feed" (new activity events since the last broadcast)
	Events []feed.Event `json:"events,omitempty"`

	// For "game_over"
	Winner     string `json:"winner,omitempty"`
	WinnerName string `json:"winnerName,omitempty"`

	// For "error" (protocol-level failures, not game rule failures)
	Error string `json:"error,omitempty"`
}
