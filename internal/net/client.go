package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/AryavP/AntBridge/internal/feed"
	"github.com/AryavP/AntBridge/internal/game"
)

// Client connects to a game server and provides a terminal REPL. Server
// messages arrive asynchronously, so a reader goroutine renders them while
// the main loop consumes stdin commands.
type Client struct {
	conn     net.Conn
	playerID string
	state    *game.Snapshot
}

// Connect joins a server and runs the REPL until the game ends or the
// connection drops.
func Connect(ctx context.Context, addr, name string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", Name: name}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	fmt.Println("Connected. Waiting for the game to start...")

	c := &Client{conn: conn}
	return c.runREPL(ctx, enc)
}

func (c *Client) runREPL(ctx context.Context, enc *json.Encoder) error {
	done := make(chan error, 1)
	go c.readServer(done)

	reader := bufio.NewScanner(os.Stdin)
	input := make(chan string)
	go func() {
		for reader.Scan() {
			input <- reader.Text()
		}
		close(input)
	}()

	fmt.Println(`Type "help" for commands.`)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			return err
		case line, ok := <-input:
			if !ok {
				return nil
			}
			msg, quit, err := c.parseLine(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if quit {
				return nil
			}
			if msg == nil {
				continue
			}
			if err := enc.Encode(*msg); err != nil {
				return fmt.Errorf("send command: %w", err)
			}
		}
	}
}

func (c *Client) readServer(done chan<- error) {
	dec := json.NewDecoder(c.conn)
	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			done <- fmt.Errorf("read message: %w", err)
			return
		}
		switch msg.Type {
		case "welcome":
			c.playerID = msg.PlayerID
			fmt.Printf("You are %s in game %s\n", msg.PlayerID, msg.GameID)
		case "result":
			if msg.Result != nil && !msg.Result.OK {
				fmt.Printf("  ✗ %s\n", msg.Result.Reason)
			} else if msg.Result != nil {
				fmt.Printf("  ✓ %s\n", msg.Result.Summary)
			}
		case "state":
			c.state = msg.State
		case "feed":
			for _, ev := range msg.Events {
				fmt.Println(feed.FormatEvent(ev))
			}
		case "game_over":
			fmt.Printf("\nGame over. %s wins!\n", msg.WinnerName)
			done <- nil
			return
		case "error":
			fmt.Printf("server error: %s\n", msg.Error)
		}
	}
}

// parseLine turns a REPL line into a protocol message. Returns a nil message
// for local-only commands like "state".
func (c *Client) parseLine(line string) (*ClientMessage, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		printHelp()
		return nil, false, nil
	case "quit", "exit":
		return nil, true, nil
	case "state":
		c.printState()
		return nil, false, nil

	case "play":
		if len(args) != 1 {
			return nil, false, fmt.Errorf("usage: play <card-id>")
		}
		return &ClientMessage{Type: CmdPlay, Card: args[0]}, false, nil
	case "pool":
		if len(args) != 1 {
			return nil, false, fmt.Errorf("usage: pool <card-id>")
		}
		return &ClientMessage{Type: CmdPlayForAttack, Card: args[0]}, false, nil
	case "place":
		if len(args) != 2 {
			return nil, false, fmt.Errorf("usage: place <card-id> <objective-id>")
		}
		return &ClientMessage{Type: CmdPlace, Card: args[0], Objective: args[1]}, false, nil
	case "buy":
		if len(args) != 1 {
			return nil, false, fmt.Errorf("usage: buy <card-id>")
		}
		return &ClientMessage{Type: CmdBuy, Card: args[0]}, false, nil
	case "attack":
		if len(args) < 2 {
			return nil, false, fmt.Errorf("usage: attack <player-id> <card-id>...")
		}
		return &ClientMessage{Type: CmdAttack, Target: args[0], Cards: args[1:]}, false, nil
	case "strike":
		if len(args) != 2 {
			return nil, false, fmt.Errorf("usage: strike <player-id> <power>")
		}
		power, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, false, fmt.Errorf("bad power %q", args[1])
		}
		return &ClientMessage{Type: CmdAttackWithPower, Target: args[0], Power: power}, false, nil
	case "end":
		return &ClientMessage{Type: CmdEndTurn}, false, nil

	case "keep":
		if len(args) < 1 {
			return nil, false, fmt.Errorf("usage: keep <event-id> [card-id]...")
		}
		return &ClientMessage{Type: CmdCompleteScout, EventID: args[0], Cards: args[1:]}, false, nil
	case "unscout":
		if len(args) != 1 {
			return nil, false, fmt.Errorf("usage: unscout <event-id>")
		}
		return &ClientMessage{Type: CmdCancelScout, EventID: args[0]}, false, nil
	case "discard":
		if len(args) < 1 {
			return nil, false, fmt.Errorf("usage: discard <event-id> <card-id>...")
		}
		return &ClientMessage{Type: CmdCompleteDiscard, EventID: args[0], Cards: args[1:]}, false, nil
	case "remove":
		if len(args) < 2 {
			return nil, false, fmt.Errorf("usage: remove <event-id> <objective-id>:<card-id>...")
		}
		ants, err := parseAntRefs(args[1:])
		if err != nil {
			return nil, false, err
		}
		return &ClientMessage{Type: CmdCompleteSabotage, EventID: args[0], Ants: ants}, false, nil
	case "trash":
		if len(args) < 1 {
			return nil, false, fmt.Errorf("usage: trash <event-id> [card-id]...")
		}
		return &ClientMessage{Type: CmdCompleteTrash, EventID: args[0], Cards: args[1:]}, false, nil

	default:
		return nil, false, fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}
}

func parseAntRefs(args []string) ([]game.AntRef, error) {
	var ants []game.AntRef
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("bad ant %q, want <objective-id>:<card-id>", arg)
		}
		ants = append(ants, game.AntRef{ObjectiveID: parts[0], CardID: parts[1]})
	}
	return ants, nil
}

func (c *Client) printState() {
	s := c.state
	if s == nil {
		fmt.Println("no state received yet")
		return
	}
	fmt.Printf("\n=== Game %s | tier %d | %s's turn ===\n", s.ID, s.CurrentTier, s.CurrentPlayer)
	fmt.Printf("Trade row: %s\n", strings.Join(s.TradeRow, ", "))
	fmt.Printf("Objective: %s\n", strings.Join(s.ConstructionRow, ", "))

	seats := append([]string{}, s.Seats...)
	if len(seats) == 0 {
		for id := range s.Players {
			seats = append(seats, id)
		}
		sort.Strings(seats)
	}
	for _, id := range seats {
		p := s.Players[id]
		if p == nil {
			continue
		}
		marker := " "
		if id == c.playerID {
			marker = "*"
		}
		fmt.Printf("%s %s (%s): %d VP, %d res, %d atk, deck %d, discard %d\n",
			marker, p.Name, id, p.VP, p.Resources, p.AttackPower, len(p.Deck), len(p.Discard))
		if id == c.playerID {
			fmt.Printf("    hand: %s\n", strings.Join(p.Hand, ", "))
		}
		for objID, ants := range p.ConstructionZone {
			fmt.Printf("    building %s: %s\n", objID, strings.Join(ants, ", "))
		}
	}
	for playerID, events := range s.Pending {
		for _, ev := range events {
			fmt.Printf("pending %s for %s: event %s", ev.Kind, playerID, ev.ID)
			if len(ev.Cards) > 0 {
				fmt.Printf(" revealed %s", strings.Join(ev.Cards, ", "))
			}
			fmt.Println()
		}
	}
	fmt.Println()
}

func printHelp() {
	fmt.Print(`Commands:
  play <card>                      play a hand card for resources
  pool <card>                      spend a hand card into the attack pool
  place <card> <objective>         place an ant on the visible objective
  buy <card>                       buy from the trade row
  attack <player> <card>...        attack with specific hand cards
  strike <player> <power>          attack using the accumulated pool
  end                              end your turn
  keep <event> [card]...           resolve a scout, keeping the named cards
  unscout <event>                  cancel a scout
  discard <event> <card>...        resolve a forced discard
  remove <event> <obj>:<card>...   resolve a sabotage
  trash <event> [card]...          resolve a trash
  state                            show the latest snapshot
  help, quit
`)
}
