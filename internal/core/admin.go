package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// handleAdmin is the single authorization gate for privileged operations.
// The sender must resolve to a registered admin; everything else is answered
// with a private not-authorized notice and no state change.
func (h *Hub) handleAdmin(cmd *Command) {
	sender, ok := h.registry.Get(cmd.From)
	if !ok || !sender.IsAdmin {
		h.sendError(cmd.From, ErrCodeNotAuthorized, "not authorized")
		return
	}
	act := cmd.Admin
	if act == nil {
		h.sendError(cmd.From, ErrCodeBadRequest, "missing admin payload")
		return
	}

	switch act.Kind {
	case AdminGetUsers:
		h.listUsers(cmd.From)
	case AdminClearChat:
		h.broadcast(GeneralRoom, proto.EventClearChatDisplay, nil)
		h.broadcastSystem(GeneralRoom, "Chat was cleared by an admin.", "moderation")
	case AdminChangeColor:
		h.changeUserColor(cmd.From, act.Target, act.Color)
	case AdminAnnounce:
		h.announce(cmd.From, act.Message)
	case AdminMuteUser:
		h.setMuted(cmd.From, act.Target, true)
	case AdminUnmuteUser:
		h.setMuted(cmd.From, act.Target, false)
	case AdminBanName:
		h.banName(cmd.From, act.TargetName)
	case AdminUnbanName:
		h.unbanName(cmd.From, act.TargetName)
	case AdminKickUser:
		h.kickUser(cmd.From, act.Target)
	default:
		h.sendError(cmd.From, ErrCodeUnknownCommand, fmt.Sprintf("unknown command %q", act.Raw))
	}
}

func (h *Hub) listUsers(adminID ConnID) {
	snapshot := h.registry.Snapshot()
	users := make([]proto.UserInfo, 0, len(snapshot))
	for _, u := range snapshot {
		users = append(users, proto.UserInfo{
			SID:     string(u.ID),
			Name:    u.Name,
			Color:   u.Color,
			Coins:   u.Coins,
			IsAdmin: u.IsAdmin,
			IsMuted: u.Muted,
		})
	}
	h.transport.Send(adminID, proto.EventAdminUsersList, proto.AdminUsersList{
		Users: users,
		Total: len(users),
	})
}

func (h *Hub) changeUserColor(adminID, target ConnID, color string) {
	if color == "" {
		h.sendError(adminID, ErrCodeBadRequest, "color is required")
		return
	}
	u, ok := h.registry.SetColor(target, color)
	if !ok {
		h.sendError(adminID, ErrCodeNotFound, "user not found")
		return
	}
	h.broadcast(GeneralRoom, proto.EventUserColorUpdated, proto.ColorUpdate{
		SID:   string(u.ID),
		Name:  u.Name,
		Color: u.Color,
	})
	h.sendSystem(target, "An admin changed your name color.", "moderation")
}

func (h *Hub) announce(adminID ConnID, message string) {
	if strings.TrimSpace(message) == "" {
		h.sendError(adminID, ErrCodeBadRequest, "announcement text is required")
		return
	}
	h.broadcast(GeneralRoom, proto.EventAnnouncement, proto.Announcement{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: timestamp(),
	})
}
