package network

import (
	"net/http"

	"github.com/cardtable-online/server/consts"
	"github.com/cardtable-online/server/game"
	"github.com/cardtable-online/server/logs"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Websocket struct {
	addr     string
	path     string
	capacity int
	registry *Registry
	game     *game.Game
}

func NewWebsocketServer(addr, path string, capacity int, registry *Registry, g *game.Game) Websocket {
	if capacity <= 0 {
		capacity = consts.MaxConnections
	}
	return Websocket{addr: addr, path: path, capacity: capacity, registry: registry, game: g}
}

func (w Websocket) Serve() error {
	logs.Info("websocket server listening on %s%s", w.addr, w.path)
	return http.ListenAndServe(w.addr, w.Handler())
}

// Handler exposes the routed handler without binding a listener.
func (w Websocket) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(w.path, w.serveWs)
	return mux
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		logs.Error("upgrade failed: %v", err)
		return
	}
	conn := NewConn(ws)
	// At capacity the connection is terminated before it can enter the
	// protocol at all.
	if !w.registry.AddIfBelow(conn, w.capacity) {
		logs.Warn("terminating %s: %v", conn.ID(), consts.ErrorsConnectionsFull)
		_ = conn.Close()
		return
	}
	logs.Info("connected %s", conn.ID())

	defer func() {
		logs.Info("disconnecting %s", conn.ID())
		w.registry.Remove(conn.ID())
		w.game.Abandon(conn.ID())
		_ = conn.Close()
	}()
	for {
		data, err := conn.Read()
		if err != nil {
			return
		}
		w.dispatch(conn, data)
	}
}
