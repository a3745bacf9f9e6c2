package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/zes0-cmd/chat-appv2/internal/core"
	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the hub. Each
// connection gets an opaque id minted here; the core never inspects it.
type WSHandler struct {
	hub     *core.Hub
	gateway *Gateway
	rate    rate.Limit
	burst   int
	log     zerolog.Logger
}

// NewWSHandler builds a WebSocket handler. msgRate/msgBurst bound how fast a
// single connection may push inbound frames.
func NewWSHandler(hub *core.Hub, gateway *Gateway, msgRate float64, msgBurst int, logger *zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub:     hub,
		gateway: gateway,
		rate:    rate.Limit(msgRate),
		burst:   msgBurst,
		log:     logger.With().Str("component", "ws").Logger(),
	}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	id := core.ConnID(uuid.NewString())
	sess := h.gateway.register(id)
	defer func() {
		h.gateway.unregister(id)
		h.hub.Dispatch(&core.Command{Kind: core.CommandDisconnect, From: id})
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, id)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, sess)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errTerminated) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("sid", string(id)).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

// errTerminated marks a server-initiated close (kick, ban, banned name).
var errTerminated = errors.New("connection terminated by server")

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, id core.ConnID) error {
	limiter := rate.NewLimiter(h.rate, h.burst)
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		if !limiter.Allow() {
			if err := wsjson.Write(ctx, conn, proto.Outbound{
				Type:  "error",
				Error: &proto.Error{Code: core.ErrCodeRateLimited, Msg: "too many messages"},
			}); err != nil {
				return err
			}
			continue
		}

		cmd, protoErr, err := inboundToCommand(id, inbound)
		if err != nil {
			h.log.Warn().Err(err).Str("sid", string(id)).Msg("failed to map inbound")
			return err
		}
		if protoErr != nil {
			if writeErr := wsjson.Write(ctx, conn, proto.Outbound{
				Type:  "error",
				Error: protoErr,
			}); writeErr != nil {
				return writeErr
			}
			continue
		}
		h.hub.Dispatch(cmd)
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, sess *session) error {
	for {
		select {
		case frame := <-sess.out:
			if err := wsjson.Write(ctx, conn, frame); err != nil {
				return err
			}
		case <-sess.done:
			// Flush anything already queued before closing.
			for {
				select {
				case frame := <-sess.out:
					if err := wsjson.Write(ctx, conn, frame); err != nil {
						return err
					}
				default:
					return errTerminated
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
