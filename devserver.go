package soljsx

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Frank-III/solid-jsx-go/dom"
)

// defaultLiveReloadPath is where the Handler exposes its live-reload
// websocket endpoint.
const defaultLiveReloadPath = "/.livereload"

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests
// with WebSocket.
var wsUpgrader = websocket.Upgrader{}

// Handler serves a directory of JSX views over HTTP for development: .jsx
// files are compiled on the fly and served as JavaScript modules, other files
// pass through to a plain file server, and connected clients can be told to
// reload over a websocket when sources change.
type Handler struct {
	// FileSystem to serve JSX views and other web assets from.
	FileSystem fs.FS

	// Options configures the transform. If nil, defaults are used.
	Options *dom.Options

	// LiveReloadPath is the websocket endpoint path for reload
	// notifications. Defaults to "/.livereload".
	LiveReloadPath string

	// OnError is a callback that is called when compiling a view fails.
	OnError func(*http.Request, error)

	// Logger configures logging for internal events.
	Logger *slog.Logger

	// init is used to initialize the handler only once.
	init sync.Once

	// logger is a private logger instance used to log internal events.
	logger *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.init.Do(func() {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		if h.Logger != nil {
			h.logger = h.Logger
		}
		if h.LiveReloadPath == "" {
			h.LiveReloadPath = defaultLiveReloadPath
		}
		h.conns = make(map[*websocket.Conn]struct{})
	})

	if r.URL.Path == h.LiveReloadPath && websocket.IsWebSocketUpgrade(r) {
		h.serveLiveReload(w, r)
		return
	}

	if strings.HasSuffix(r.URL.Path, jsxExt) {
		h.serveView(w, r)
		return
	}

	http.FileServer(http.FS(h.FileSystem)).ServeHTTP(w, r)
}

func (h *Handler) serveView(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	f, err := h.FileSystem.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	out, err := Compile(name, f, h.Options)
	if err != nil {
		h.logger.Error("Compile view", "view", name, "error", err)
		if h.OnError != nil {
			h.OnError(r, err)
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = io.WriteString(w, out)
}

func (h *Handler) serveLiveReload(w http.ResponseWriter, r *http.Request) {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Upgrade websocket", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[ws] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("Live-reload client connected", "remote", ws.RemoteAddr())

	// Drain incoming messages until the client goes away; the connection
	// exists only for server-to-client notifications.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.conns, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// NotifyReload tells every connected live-reload client to refresh. Clients
// with dead connections are dropped.
func (h *Handler) NotifyReload() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns == nil {
		return
	}
	for ws := range h.conns {
		if err := ws.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(h.conns, ws)
			_ = ws.Close()
		}
	}
}
