package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"

	"github.com/AryavP/AntBridge/internal/catalog"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for /api/cards.
type CardInfo struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Cost      int      `json:"cost"`
	Attack    int      `json:"attack,omitempty"`
	Defense   int      `json:"defense,omitempty"`
	Resources int      `json:"resources,omitempty"`
	VP        int      `json:"vp,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
	Starter   bool     `json:"starter,omitempty"`
}

// ObjectiveInfo is the JSON representation of an objective for
// /api/objectives.
type ObjectiveInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Tier         int    `json:"tier"`
	AntsRequired int    `json:"antsRequired"`
	VP           int    `json:"vp"`
	Reward       string `json:"reward"`
}

// Server is the web front: a card/objective reference API plus a WebSocket
// proxy that bridges the browser to a TCP game server.
type Server struct {
	catalog *catalog.Catalog
	mux     *http.ServeMux
}

// NewServer creates a web server over the given catalog.
func NewServer(cat *catalog.Catalog) *Server {
	s := &Server{catalog: cat, mux: http.NewServeMux()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/objectives", s.handleObjectives)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, c := range s.catalog.Cards() {
		ci := CardInfo{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type.String(),
			Cost:      c.Cost,
			Attack:    c.Attack,
			Defense:   c.Defense,
			Resources: c.Resources,
			VP:        c.VP,
			Starter:   c.IsStarter(),
		}
		for _, a := range c.Abilities {
			ci.Abilities = append(ci.Abilities, a.String())
		}
		cards = append(cards, ci)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleObjectives(w http.ResponseWriter, r *http.Request) {
	var objectives []ObjectiveInfo
	for _, o := range s.catalog.Objectives() {
		objectives = append(objectives, ObjectiveInfo{
			ID:           o.ID,
			Name:         o.Name,
			Tier:         o.Tier,
			AntsRequired: o.AntsRequired,
			VP:           o.VP,
			Reward:       o.Reward.String(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(objectives)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow connections from any origin
	})
	if err != nil {
		log.Printf("websocket accept: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	// The browser opens with a connect message naming the game server.
	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("websocket read connect: %v", err)
		return
	}
	var connectMsg struct {
		Type string `json:"type"`
		Addr string `json:"addr"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{
			"type":  "error",
			"error": fmt.Sprintf("could not reach game server at %s: %v", connectMsg.Addr, err),
		})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	joinMsg, _ := json.Marshal(map[string]string{
		"type": "join",
		"name": connectMsg.Name,
	})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		log.Printf("tcp write join: %v", err)
		return
	}

	done := make(chan struct{})

	// TCP → WebSocket (server messages to browser)
	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					log.Printf("tcp read: %v", err)
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				log.Printf("websocket write: %v", err)
				return
			}
		}
	}()

	// WebSocket → TCP (browser commands to server)
	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				log.Printf("tcp write: %v", err)
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
