package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"

	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/feed"
	"github.com/AryavP/AntBridge/internal/game"
)

// Archiver records a finished game. Implemented by the archive store; nil
// disables archiving.
type Archiver interface {
	SaveGame(gs *game.GameState, events []feed.Event) error
}

// Server hosts one authoritative game over TCP. Exactly one goroutine owns
// the engine: reader goroutines forward decoded commands into a channel and
// the main loop applies them in arrival order, so two clients can never race
// a mutation.
type Server struct {
	Port    string
	Players int
	Catalog *catalog.Catalog
	Seed    int64
	Archive Archiver
}

type client struct {
	seat string
	name string
	conn net.Conn
	dec  *json.Decoder
	enc  *json.Encoder
	mu   sync.Mutex
}

func (c *client) send(msg ServerMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enc.Encode(msg)
}

type request struct {
	seat string
	msg  ClientMessage
	err  error
}

// Run listens, waits for every seat to join, then plays the game to
// completion.
func (s *Server) Run(ctx context.Context) error {
	if s.Players < 2 {
		return errors.New("need at least 2 players")
	}
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	log.Printf("waiting for %d players on port %s", s.Players, s.Port)
	clients, err := s.acceptPlayers(ln)
	if err != nil {
		return err
	}

	seats := make([]game.Seat, len(clients))
	for i, c := range clients {
		seats[i] = game.Seat{ID: c.seat, Name: c.name}
	}
	logger := feed.NewMemoryLogger()
	engine := game.NewEngine(game.Config{
		Seats:   seats,
		Catalog: s.Catalog,
		Logger:  logger,
		Seed:    s.Seed,
	})
	if err := engine.SetupGame(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	log.Printf("game %s started with %d players", engine.State.ID, len(clients))

	for _, c := range clients {
		if err := c.send(ServerMessage{Type: "welcome", PlayerID: c.seat, GameID: engine.State.ID}); err != nil {
			return fmt.Errorf("welcome %s: %w", c.seat, err)
		}
	}

	requests := make(chan request)
	for _, c := range clients {
		go readLoop(c, requests)
	}

	lastSeq := 0
	lastSeq = s.broadcast(clients, engine, logger, lastSeq)

	for engine.State.Status == game.StatusActive {
		var req request
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req = <-requests:
		}
		c := clientBySeat(clients, req.seat)
		if req.err != nil {
			log.Printf("%s disconnected: %v", req.seat, req.err)
			// Unblock the game before dropping the seat.
			for engine.HasPending(req.seat) {
				engine.ResolvePendingDefault(req.seat)
			}
			if engine.State.CurrentPlayer == req.seat {
				engine.EndTurn(req.seat)
			}
			lastSeq = s.broadcast(clients, engine, logger, lastSeq)
			continue
		}

		result := apply(engine, req.seat, req.msg)
		if err := c.send(ServerMessage{Type: "result", Result: &result}); err != nil {
			log.Printf("send result to %s: %v", req.seat, err)
		}
		if result.OK {
			lastSeq = s.broadcast(clients, engine, logger, lastSeq)
		}
	}

	winner := engine.State.Winner
	over := ServerMessage{
		Type:       "game_over",
		Winner:     winner,
		WinnerName: clientName(clients, winner),
	}
	for _, c := range clients {
		_ = c.send(over)
	}
	if s.Archive != nil {
		if err := s.Archive.SaveGame(engine.State, logger.Events()); err != nil {
			log.Printf("archive game %s: %v", engine.State.ID, err)
		}
	}
	return nil
}

func (s *Server) acceptPlayers(ln net.Listener) ([]*client, error) {
	var clients []*client
	for i := 0; i < s.Players; i++ {
		conn, err := ln.Accept()
		if err != nil {
			return nil, fmt.Errorf("accept: %w", err)
		}
		dec := json.NewDecoder(conn)
		var join ClientMessage
		if err := dec.Decode(&join); err != nil {
			conn.Close()
			return nil, fmt.Errorf("read join: %w", err)
		}
		if join.Type != "join" {
			conn.Close()
			return nil, fmt.Errorf("expected join, got %q", join.Type)
		}
		name := join.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		c := &client{
			seat: fmt.Sprintf("p%d", i+1),
			name: name,
			conn: conn,
			dec:  dec,
			enc:  json.NewEncoder(conn),
		}
		clients = append(clients, c)
		log.Printf("%s joined as %s from %s", name, c.seat, conn.RemoteAddr())
	}
	return clients, nil
}

// readLoop decodes one client's messages using the same decoder the
// handshake used, so bytes it buffered are not lost.
func readLoop(c *client, requests chan<- request) {
	for {
		var msg ClientMessage
		if err := c.dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("connection closed")
			}
			requests <- request{seat: c.seat, err: err}
			return
		}
		requests <- request{seat: c.seat, msg: msg}
	}
}

// apply dispatches a command to the engine. The seat comes from the
// connection, never from the message, so a client cannot act for another
// player.
func apply(e *game.Engine, seat string, msg ClientMessage) game.Result {
	switch msg.Type {
	case CmdPlay:
		return e.PlayCard(seat, msg.Card)
	case CmdPlayForAttack:
		return e.PlayCardForAttack(seat, msg.Card)
	case CmdPlace:
		return e.PlaceAntOnConstruction(seat, msg.Card, msg.Objective)
	case CmdBuy:
		return e.BuyCard(seat, msg.Card)
	case CmdAttack:
		return e.AttackPlayer(seat, msg.Target, msg.Cards)
	case CmdAttackWithPower:
		return e.AttackWithPower(seat, msg.Target, msg.Power)
	case CmdEndTurn:
		return e.EndTurn(seat)
	case CmdCompleteScout:
		return e.CompleteScout(seat, msg.EventID, msg.Cards)
	case CmdCancelScout:
		return e.CancelScout(seat, msg.EventID)
	case CmdCompleteDiscard:
		return e.CompleteDiscard(seat, msg.EventID, msg.Cards)
	case CmdCompleteSabotage:
		return e.CompleteSabotage(seat, msg.EventID, msg.Ants)
	case CmdCompleteTrash:
		return e.CompleteTrash(seat, msg.EventID, msg.Cards)
	default:
		return game.Fail("unknown command %q", msg.Type)
	}
}

// broadcast sends the fresh snapshot and any new feed events to every
// client, returning the new feed high-water mark.
func (s *Server) broadcast(clients []*client, e *game.Engine, logger *feed.MemoryLogger, lastSeq int) int {
	snapshot := game.TakeSnapshot(e.State)
	events := logger.Events()
	fresh := events[lastSeq:]
	for _, c := range clients {
		if err := c.send(ServerMessage{Type: "state", State: snapshot}); err != nil {
			log.Printf("send state to %s: %v", c.seat, err)
			continue
		}
		if len(fresh) > 0 {
			if err := c.send(ServerMessage{Type: "feed", Events: fresh}); err != nil {
				log.Printf("send feed to %s: %v", c.seat, err)
			}
		}
	}
	return len(events)
}

func clientBySeat(clients []*client, seat string) *client {
	for _, c := range clients {
		if c.seat == seat {
			return c
		}
	}
	return nil
}

func clientName(clients []*client, seat string) string {
	if c := clientBySeat(clients, seat); c != nil {
		return c.name
	}
	return seat
}
