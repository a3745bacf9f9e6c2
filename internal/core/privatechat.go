package core

import (
	"strings"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// PrivateRoomID derives the room identifier for a two-party chat. The ids are
// ordered canonically so both participants compute the same room regardless
// of who initiates.
func PrivateRoomID(a, b ConnID) string {
	lo, hi := string(a), string(b)
	if hi < lo {
		lo, hi = hi, lo
	}
	return "private_" + lo + "_" + hi
}

func (h *Hub) handleStartPrivateChat(cmd *Command) {
	initiator, ok := h.registry.Get(cmd.From)
	if !ok {
		h.sendError(cmd.From, ErrCodeNotFound, "set a name before starting a private chat")
		return
	}
	if cmd.From == cmd.Target {
		h.sendError(cmd.From, ErrCodeBadRequest, "cannot start a private chat with yourself")
		return
	}
	target, ok := h.registry.Get(cmd.Target)
	if !ok {
		h.sendError(cmd.From, ErrCodeNotFound, "user not found")
		return
	}

	room := PrivateRoomID(cmd.From, cmd.Target)
	h.rooms.Join(room, cmd.From)
	h.rooms.Join(room, cmd.Target)

	h.transport.Send(cmd.From, proto.EventPrivateChatInitiated, proto.PrivateChatInitiated{
		RoomID:   room,
		PeerSID:  string(target.ID),
		PeerName: target.Name,
	})
	h.transport.Send(cmd.Target, proto.EventPrivateChatInitiated, proto.PrivateChatInitiated{
		RoomID:   room,
		PeerSID:  string(initiator.ID),
		PeerName: initiator.Name,
	})
}

func (h *Hub) handleSendPrivateMessage(cmd *Command) {
	u, ok := h.registry.Get(cmd.From)
	if !ok {
		return
	}
	text := strings.TrimSpace(cmd.Text)
	if text == "" || cmd.Room == "" {
		return
	}
	h.broadcast(cmd.Room, proto.EventPrivateMessage, proto.PrivateMessage{
		RoomID:     cmd.Room,
		SenderSID:  string(u.ID),
		SenderName: u.Name,
		Text:       text,
		Timestamp:  timestamp(),
		IsAdmin:    u.IsAdmin,
		Color:      u.Color,
	})
}
