package input

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/status"
)

// Welcome is the first message sent on a tracker connection
type Welcome struct {
	Session string `json:"session"`
}

// TrackerServer accepts hand-tracker samples over websocket and pushes them into a Tracker
type TrackerServer struct {
	addr    string
	tracker *Tracker

	statClients *atomic.Int64
	statSession *status.Label
}

// NewTrackerServer creates a server that will listen on addr
func NewTrackerServer(addr string, tracker *Tracker, reg *status.Registry) *TrackerServer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &TrackerServer{
		addr:        addr,
		tracker:     tracker,
		statClients: reg.Ints.Get(status.KeyTrackerClients),
		statSession: reg.Strings.Get(status.KeyTrackerSession),
	}
}

// Handler returns the routes: /track (websocket) and /healthz
func (s *TrackerServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/track", s.handleTrack)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Run serves until ctx is done
func (s *TrackerServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.TrackerShutdownWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[Tracker] listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *TrackerServer) handleTrack(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Browser trackers are served from arbitrary local origins
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[Tracker] accept: %v", err)
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(constants.TrackerReadLimit)

	session := uuid.NewString()
	s.statClients.Add(1)
	defer s.statClients.Add(-1)
	s.statSession.Store(session)
	log.Printf("[Tracker] session %s connected from %s", session, r.RemoteAddr)

	ctx := r.Context()
	if err := wsjson.Write(ctx, conn, Welcome{Session: session}); err != nil {
		log.Printf("[Tracker] session %s welcome: %v", session, err)
		return
	}

	for {
		var sample Sample
		readCtx, cancel := context.WithTimeout(ctx, constants.TrackerIdleTimeout)
		err := wsjson.Read(readCtx, conn, &sample)
		cancel()
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Printf("[Tracker] session %s closed", session)
			default:
				log.Printf("[Tracker] session %s read: %v", session, err)
			}
			return
		}
		s.tracker.Push(sample)
	}
}

func (s *TrackerServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.statClients.Load(),
	})
}
