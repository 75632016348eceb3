package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	blackfriday "github.com/russross/blackfriday/v2"
)

// Snapshot is one live-view update pushed to every connected websocket
// client: the current wiring plus a per-region tick counter and the
// cross-region buffers' current depth, for a dashboard that shows a
// system in motion rather than a single static export.
type Snapshot struct {
	Graph       Graph            `json:"graph"`
	TickCounts  map[string]uint64 `json:"tick_counts"`
	BufferDepth map[string]int   `json:"buffer_depth"`
}

// Server is a tiny HTTP+websocket live view, grounded in the example
// pack's cmd/mservice WebSockets handler: one broadcast channel fanned
// out to a sync.Map of per-connection channels, plus a single static
// page rendering a Markdown description of the system through
// blackfriday (grounded in the pack's tools/spec-html.go).
type Server struct {
	Doc string // Markdown description rendered on the index page.

	push  chan Snapshot
	conns sync.Map // id string -> chan Snapshot
}

// NewServer creates a Server. Doc is rendered as the index page's
// description.
func NewServer(doc string) *Server {
	return &Server{Doc: doc, push: make(chan Snapshot, 16)}
}

// Push enqueues snapshot for delivery to every connected client.
// Non-blocking: a full queue drops the snapshot rather than stalling the
// caller, which will typically be a region's controller loop.
func (s *Server) Push(snapshot Snapshot) {
	select {
	case s.push <- snapshot:
	default:
	}
}

// Run starts the broadcast fan-out goroutine and blocks until ctx is
// done.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-s.push:
			s.conns.Range(func(_, v interface{}) bool {
				ch := v.(chan Snapshot)
				select {
				case ch <- snap:
				default:
					log.Println("inspect: client channel full, dropping snapshot")
				}
				return true
			})
		}
	}
}

var upgrader = websocket.Upgrader{}

// Handler returns the HTTP handler serving the index page at "/" and the
// live websocket feed at "/ws".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	rendered := blackfriday.Run([]byte(s.Doc))
	fmt.Fprintf(w, indexTemplate, rendered)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("inspect: upgrade:", err)
		return
	}
	defer conn.Close()

	ch := make(chan Snapshot, 8)
	id := conn.RemoteAddr().String()
	s.conns.Store(id, ch)
	defer s.conns.Delete(id)

	for snap := range ch {
		data, err := json.Marshal(snap)
		if err != nil {
			log.Println("inspect: marshal snapshot:", err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Println("inspect: write:", err)
			return
		}
	}
}

const indexTemplate = `<!DOCTYPE html>
<html><head><title>flexcore inspector</title></head>
<body>
<div class="doc">%s</div>
<pre id="live"></pre>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function(ev) { document.getElementById("live").textContent = ev.data; };
</script>
</body></html>
`
