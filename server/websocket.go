package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"nhooyr.io/websocket"

	"github.com/RyanBlaney/sonido-fourier/algorithms/stats"
	"github.com/RyanBlaney/sonido-fourier/logging"
)

const maxMessageBytes = 1024

// termsRequest is sent by the page each time the slider moves
type termsRequest struct {
	N *int `json:"n"`
}

// update is the reply to one termsRequest
type update struct {
	N       int                      `json:"n"`
	Latex   string                   `json:"latex"`
	Title   string                   `json:"title"`
	SVG     string                   `json:"svg"`
	Metrics stats.ApproximationError `json:"metrics"`
}

type errorReply struct {
	Message string `json:"message"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", logging.Fields{"error": err.Error()})
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()
	conn.SetReadLimit(maxMessageBytes)

	ctx := logging.ContextWithFields(r.Context(), logging.Fields{"remote": r.RemoteAddr})
	logger := s.logger.WithContext(ctx)
	logger.Debug("websocket connected")

	// One message is handled at a time; the next read waits for the reply.
	for {
		_, msg, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure &&
				websocket.CloseStatus(err) != websocket.StatusGoingAway &&
				!errors.Is(err, context.Canceled) {
				logger.Debug("websocket read ended", logging.Fields{"error": err.Error()})
			}
			return
		}

		reply, err := s.handleTermsMessage(msg)
		if err != nil {
			logger.Debug("rejected websocket message", logging.Fields{"error": err.Error()})
			reply = errorReply{Message: err.Error()}
		}

		if err := writeJSON(ctx, conn, reply); err != nil {
			logger.Debug("websocket write failed", logging.Fields{"error": err.Error()})
			return
		}
	}
}

func (s *Server) handleTermsMessage(msg []byte) (any, error) {
	var req termsRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return nil, errors.New("expected {\"n\": <int>}")
	}

	n := s.cfg.Terms.Default
	if req.N != nil {
		n = s.cfg.ClampTerms(*req.N)
	}

	rep := s.buildReport(n)
	svg, err := s.renderSVG(rep.Comparison)
	if err != nil {
		s.logger.Error(err, "render chart failed", logging.Fields{"n": n})
		return nil, errors.New("render chart failed")
	}

	return update{
		N:       rep.Comparison.Terms,
		Latex:   rep.Latex,
		Title:   rep.Title,
		SVG:     svg,
		Metrics: rep.Metrics,
	}, nil
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, b)
}
