package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/logger"
)

// snapshotEvent announces a new snapshot to event stream clients.
type snapshotEvent struct {
	Snapshot     string `json:"snapshot"`
	Transactions int    `json:"transactions"`
	Rejected     int    `json:"rejected"`
	Time         string `json:"time"`
}

// handleEvents streams a "snapshot" event for the current snapshot and for
// every snapshot published afterwards, until the client goes away.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := logger.FromContext(r.Context())
	updates, cancel := s.store.Subscribe()
	defer cancel()
	log.Debug().Str("remote", r.RemoteAddr).Msg("event stream opened")
	defer log.Debug().Str("remote", r.RemoteAddr).Msg("event stream closed")

	ping := time.NewTicker(s.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ping.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := sendSnapshot(w, snap); err != nil {
				log.Warn().Err(err).Msg("could not send event")
				return
			}
			flusher.Flush()
		}
	}
}

func sendSnapshot(w http.ResponseWriter, snap *ledgerdash.Snapshot) error {
	data, err := json.Marshal(snapshotEvent{
		Snapshot:     snap.ID(),
		Transactions: snap.Len(),
		Rejected:     len(snap.Rejected()),
		Time:         time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
	return err
}
