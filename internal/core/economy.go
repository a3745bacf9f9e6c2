package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// runEconomy credits coins to every registered user at a fixed interval. It
// runs for the process lifetime and is only stopped by ctx cancellation.
func (h *Hub) runEconomy(ctx context.Context) {
	ticker := time.NewTicker(h.opts.CoinInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.economyTick()
		case <-ctx.Done():
			return
		}
	}
}

// economyTick snapshots the registered ids, then credits each one
// independently. Users removed between the snapshot and their credit are
// skipped; no lock is held across the sweep.
func (h *Hub) economyTick() {
	for _, id := range h.registry.IDs() {
		u, ok := h.registry.AddCoins(id, h.opts.CoinsPerTick)
		if !ok {
			continue
		}
		h.transport.Send(id, proto.EventCoinUpdate, proto.CoinUpdate{Coins: u.Coins})
	}
}

func (h *Hub) handleGetShopItems(cmd *Command) {
	if _, ok := h.registry.Get(cmd.From); !ok {
		return
	}
	catalog := h.shop.Items()
	items := make([]proto.ShopItemInfo, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, proto.ShopItemInfo{
			ID:    item.ID,
			Name:  item.Name,
			Cost:  item.Cost,
			Kind:  string(item.Kind),
			Value: item.Value,
		})
	}
	h.transport.Send(cmd.From, proto.EventShopItems, proto.ShopItems{Items: items})
}

func (h *Hub) handleBuyItem(cmd *Command) {
	u, ok := h.registry.Get(cmd.From)
	if !ok {
		return
	}
	item, ok := h.shop.Item(cmd.ItemID)
	if !ok {
		h.transport.Send(cmd.From, proto.EventPurchaseFeedback, proto.PurchaseFeedback{
			OK:      false,
			Message: "item not found",
			Coins:   u.Coins,
		})
		return
	}

	updated, err := h.registry.Purchase(cmd.From, item.Cost, func(u *User) {
		if item.Kind == ItemKindColor {
			u.Color = item.Value
		}
	})
	switch {
	case errors.Is(err, ErrNotFound):
		return
	case errors.Is(err, ErrInsufficientFunds):
		h.transport.Send(cmd.From, proto.EventPurchaseFeedback, proto.PurchaseFeedback{
			OK:      false,
			Message: "insufficient funds",
			ItemID:  item.ID,
			Coins:   updated.Coins,
		})
		return
	}

	h.transport.Send(cmd.From, proto.EventPurchaseFeedback, proto.PurchaseFeedback{
		OK:      true,
		Message: fmt.Sprintf("You bought %s.", item.Name),
		ItemID:  item.ID,
		Coins:   updated.Coins,
	})
	if item.Kind == ItemKindColor {
		h.broadcast(GeneralRoom, proto.EventUserColorUpdated, proto.ColorUpdate{
			SID:   string(updated.ID),
			Name:  updated.Name,
			Color: updated.Color,
		})
	}
	h.transport.Send(cmd.From, proto.EventCoinUpdate, proto.CoinUpdate{Coins: updated.Coins})
	h.log.Info().Str("sid", string(cmd.From)).Str("item", item.ID).Int("coins", updated.Coins).Msg("purchase")
}
