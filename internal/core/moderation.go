package core

import (
	"fmt"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// Moderation operations. Callers must have passed the admin gate in the
// dispatcher; these methods do not re-check authority.

func (h *Hub) setMuted(adminID, target ConnID, muted bool) {
	u, ok := h.registry.SetMuted(target, muted)
	if !ok {
		h.sendError(adminID, ErrCodeNotFound, "user not found")
		return
	}
	if muted {
		h.broadcastSystem(GeneralRoom, fmt.Sprintf("%s has been muted by an admin.", u.Name), "moderation")
		h.sendSystem(target, "You have been muted by an admin.", "moderation")
	} else {
		h.broadcastSystem(GeneralRoom, fmt.Sprintf("%s has been unmuted by an admin.", u.Name), "moderation")
		h.sendSystem(target, "You have been unmuted by an admin.", "moderation")
	}
	h.log.Info().Str("target", string(target)).Bool("muted", muted).Msg("mute state changed")
}

func (h *Hub) kickUser(adminID, target ConnID) {
	u, ok := h.registry.Get(target)
	if !ok {
		// Target already gone; report to the admin only.
		h.sendSystem(adminID, "User not found.", "moderation")
		return
	}
	h.transport.Send(target, proto.EventDisconnectClient, proto.DisconnectNotice{Reason: "kicked by an admin"})
	h.transport.Terminate(target)
	h.removeConnection(target)
	h.broadcastSystem(GeneralRoom, fmt.Sprintf("%s was kicked by an admin.", u.Name), "moderation")
	h.sendSystem(adminID, fmt.Sprintf("Kicked %s.", u.Name), "moderation")
	h.log.Info().Str("target", string(target)).Str("name", u.Name).Msg("user kicked")
}

func (h *Hub) banName(adminID ConnID, name string) {
	folded := FoldName(name)
	if folded == "" {
		h.sendError(adminID, ErrCodeBadRequest, "name is required")
		return
	}
	h.bans.Ban(folded)

	// Disconnect every currently-connected holder of the banned name. The
	// connection may close concurrently; removal is idempotent.
	for _, id := range h.registry.MatchFolded(folded) {
		h.transport.Send(id, proto.EventDisconnectClient, proto.DisconnectNotice{Reason: "name banned"})
		h.transport.Terminate(id)
		h.removeConnection(id)
	}

	h.broadcastSystem(GeneralRoom, fmt.Sprintf("The name %q has been banned.", name), "moderation")
	h.sendSystem(adminID, fmt.Sprintf("Banned the name %q.", name), "moderation")
	h.log.Info().Str("name", folded).Msg("name banned")
}

func (h *Hub) unbanName(adminID ConnID, name string) {
	folded := FoldName(name)
	if folded == "" {
		h.sendError(adminID, ErrCodeBadRequest, "name is required")
		return
	}
	if !h.bans.Unban(folded) {
		h.sendError(adminID, ErrCodeNotFound, "name is not banned")
		return
	}
	h.sendSystem(adminID, fmt.Sprintf("Unbanned the name %q.", name), "moderation")
	h.log.Info().Str("name", folded).Msg("name unbanned")
}
