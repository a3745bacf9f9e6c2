package core

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// Transport is the capability the core uses to reach clients. Sends are
// fire-and-forget; the core never awaits delivery.
type Transport interface {
	// Send delivers one event to one connection.
	Send(id ConnID, event string, payload any)
	// SendToMany delivers one event to a group of connections.
	SendToMany(ids []ConnID, event string, payload any)
	// Terminate force-closes one connection.
	Terminate(id ConnID)
}

// Options tune hub behavior.
type Options struct {
	// AdminTrigger is the reserved display name that grants admin authority.
	AdminTrigger string
	// CoinInterval is the economy sweep period.
	CoinInterval time.Duration
	// CoinsPerTick is the amount credited per user per sweep.
	CoinsPerTick int
}

func (o *Options) withDefaults() {
	if o.AdminTrigger == "" {
		o.AdminTrigger = "./admin-menu./"
	}
	if o.CoinInterval <= 0 {
		o.CoinInterval = 60 * time.Second
	}
	if o.CoinsPerTick <= 0 {
		o.CoinsPerTick = 1
	}
}

// adminDisplayName replaces the trigger string so it never leaks into a
// broadcast.
const adminDisplayName = "Admin"

// Hub coordinates registry, rooms, moderation, and the economy. All inbound
// commands are processed on a single goroutine; the economy sweep is the only
// concurrent activity and goes through the registry's own lock.
type Hub struct {
	transport Transport
	registry  *Registry
	rooms     *Directory
	bans      *BanList
	shop      *Catalog
	opts      Options
	commands  chan *Command
	log       zerolog.Logger
}

// NewHub constructs a hub bound to the given transport.
func NewHub(t Transport, opts Options, logger *zerolog.Logger) *Hub {
	opts.withDefaults()
	return &Hub{
		transport: t,
		registry:  NewRegistry(),
		rooms:     NewDirectory(),
		bans:      NewBanList(),
		shop:      DefaultCatalog(),
		opts:      opts,
		commands:  make(chan *Command, 64),
		log:       logger.With().Str("component", "hub").Logger(),
	}
}

// Dispatch queues a command for the processing lane.
func (h *Hub) Dispatch(cmd *Command) {
	h.commands <- cmd
}

// Run processes commands until ctx is canceled. Each command runs to
// completion before the next is taken.
func (h *Hub) Run(ctx context.Context) {
	go h.runEconomy(ctx)
	for {
		select {
		case cmd := <-h.commands:
			h.handle(cmd)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handle(cmd *Command) {
	switch cmd.Kind {
	case CommandSetName:
		h.handleSetName(cmd)
	case CommandSendMessage:
		h.handleSendMessage(cmd)
	case CommandBuyItem:
		h.handleBuyItem(cmd)
	case CommandGetShopItems:
		h.handleGetShopItems(cmd)
	case CommandStartPrivateChat:
		h.handleStartPrivateChat(cmd)
	case CommandSendPrivateMessage:
		h.handleSendPrivateMessage(cmd)
	case CommandAdmin:
		h.handleAdmin(cmd)
	case CommandDisconnect:
		h.removeConnection(cmd.From)
	default:
		h.log.Warn().Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

func (h *Hub) handleSetName(cmd *Command) {
	requested := strings.TrimSpace(cmd.Name)
	if requested == "" {
		return
	}

	if h.bans.IsBanned(requested) {
		h.sendSystem(cmd.From, "That name is banned.", "moderation")
		h.transport.Send(cmd.From, proto.EventDisconnectClient, proto.DisconnectNotice{Reason: "name banned"})
		h.transport.Terminate(cmd.From)
		return
	}

	isAdmin := requested == h.opts.AdminTrigger
	finalName := requested
	renamed := false
	if isAdmin {
		finalName = adminDisplayName
	} else if h.registry.NameTaken(requested, cmd.From) {
		finalName = fmt.Sprintf("%s_%03d", requested, 100+rand.Intn(900))
		renamed = true
	}

	u := User{ID: cmd.From, Name: finalName, IsAdmin: isAdmin, Color: DefaultColor}
	if prior, ok := h.registry.Get(cmd.From); ok {
		// Re-naming the same connection keeps its balance, mute state,
		// and any previously granted admin authority.
		u.Coins = prior.Coins
		u.Muted = prior.Muted
		u.IsAdmin = u.IsAdmin || prior.IsAdmin
	}
	h.registry.Put(u)
	h.rooms.Join(GeneralRoom, cmd.From)

	h.transport.Send(cmd.From, proto.EventNameSetAck, proto.NameSetAck{
		SID:     string(cmd.From),
		Name:    finalName,
		Renamed: renamed,
		Coins:   u.Coins,
		Color:   u.Color,
	})
	if u.IsAdmin {
		h.transport.Send(cmd.From, proto.EventAdminStatus, proto.AdminStatus{IsAdmin: true})
	}
	h.broadcast(GeneralRoom, proto.EventUserJoined, proto.Presence{Name: finalName})
	h.log.Info().Str("sid", string(cmd.From)).Str("name", finalName).Bool("admin", u.IsAdmin).Msg("user named")
}

// removeConnection tears down all state for id. Idempotent; safe to call for
// connections that were never named or already removed.
func (h *Hub) removeConnection(id ConnID) {
	u, known := h.registry.Get(id)
	h.registry.Remove(id)
	h.rooms.LeaveAll(id)
	if known {
		h.broadcast(GeneralRoom, proto.EventUserLeft, proto.Presence{Name: u.Name})
		h.log.Info().Str("sid", string(id)).Str("name", u.Name).Msg("user left")
	}
}

func (h *Hub) handleSendMessage(cmd *Command) {
	u, ok := h.registry.Get(cmd.From)
	if !ok {
		h.sendSystem(cmd.From, "Set a name before chatting.", "moderation")
		return
	}
	if u.Muted {
		h.sendSystem(cmd.From, "You are currently muted.", "moderation")
		return
	}
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return
	}
	h.broadcast(GeneralRoom, proto.EventNewMessage, proto.NewMessage{
		SenderSID:  string(u.ID),
		SenderName: u.Name,
		Text:       text,
		Timestamp:  timestamp(),
		IsAdmin:    u.IsAdmin,
		Color:      u.Color,
	})
}

// broadcast resolves room membership and hands the member list to the
// transport's group-send primitive.
func (h *Hub) broadcast(room, event string, payload any) {
	members := h.rooms.Members(room)
	if len(members) == 0 {
		return
	}
	h.transport.SendToMany(members, event, payload)
}

func (h *Hub) sendSystem(id ConnID, message, kind string) {
	h.transport.Send(id, proto.EventSystemMessage, proto.SystemMessage{Message: message, Kind: kind})
}

func (h *Hub) broadcastSystem(room, message, kind string) {
	h.broadcast(room, proto.EventSystemMessage, proto.SystemMessage{Message: message, Kind: kind})
}

func (h *Hub) sendError(id ConnID, code, msg string) {
	h.transport.Send(id, proto.EventError, proto.Error{Code: code, Msg: msg})
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}
