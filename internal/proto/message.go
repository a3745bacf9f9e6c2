package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Inbound event names.
const (
	InboundSetName            = "set_name"
	InboundSendMessage        = "send_message"
	InboundBuyItem            = "buy_item"
	InboundGetShopItems       = "get_shop_items"
	InboundStartPrivateChat   = "start_private_chat"
	InboundSendPrivateMessage = "send_private_message"
	InboundAdminCommand       = "admin_command"
)

// Outbound event names.
const (
	EventNewMessage           = "new_message"
	EventNameSetAck           = "name_set_ack"
	EventAdminStatus          = "admin_status"
	EventSystemMessage        = "system_message"
	EventUserJoined           = "user_joined"
	EventUserLeft             = "user_left"
	EventCoinUpdate           = "coin_update"
	EventPurchaseFeedback     = "purchase_feedback"
	EventShopItems            = "shop_items"
	EventPrivateChatInitiated = "private_chat_initiated"
	EventPrivateMessage       = "private_message"
	EventAdminUsersList       = "admin_users_list"
	EventClearChatDisplay     = "clear_chat_display"
	EventUserColorUpdated     = "user_color_updated"
	EventAnnouncement         = "announcement"
	EventDisconnectClient     = "disconnect_client"
	EventError                = "error"
)

// SetNameData claims a display name.
type SetNameData struct {
	Name string `json:"name"`
}

// SendMessageData is a chat message for the general room.
type SendMessageData struct {
	Text string `json:"text"`
}

// BuyItemData purchases one shop item.
type BuyItemData struct {
	ItemID string `json:"item_id"`
}

// StartPrivateChatData opens a private chat with another connection.
type StartPrivateChatData struct {
	TargetSID string `json:"target_sid"`
}

// SendPrivateMessageData is a message for an established private room.
type SendPrivateMessageData struct {
	RoomID string `json:"room_id"`
	Text   string `json:"text"`
}

// AdminCommandData is the free-form admin envelope; the transport mapper
// narrows it to a closed command set before dispatch.
type AdminCommandData struct {
	Type       string `json:"type"`
	TargetSID  string `json:"target_sid,omitempty"`
	TargetName string `json:"target_name,omitempty"`
	Color      string `json:"color,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// NewMessage is a chat message delivered to room members.
type NewMessage struct {
	SenderSID  string `json:"sender_sid"`
	SenderName string `json:"sender_name"`
	Text       string `json:"message_text"`
	Timestamp  string `json:"timestamp"`
	IsAdmin    bool   `json:"is_admin_message"`
	Color      string `json:"color"`
}

// NameSetAck confirms the final display name after collision resolution.
type NameSetAck struct {
	SID     string `json:"sid"`
	Name    string `json:"name"`
	Renamed bool   `json:"renamed"`
	Coins   int    `json:"coins"`
	Color   string `json:"color"`
}

// AdminStatus tells a connection whether it holds admin authority.
type AdminStatus struct {
	IsAdmin bool `json:"is_admin"`
}

// SystemMessage is a service notice; Kind hints display styling.
type SystemMessage struct {
	Message string `json:"message"`
	Kind    string `json:"type,omitempty"`
}

// Presence announces a user joining or leaving the general room.
type Presence struct {
	Name string `json:"name"`
}

// CoinUpdate carries a user's current coin balance.
type CoinUpdate struct {
	Coins int `json:"coins"`
}

// ShopItemInfo is one catalog entry in a shop listing.
type ShopItemInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cost  int    `json:"cost"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// ShopItems lists the purchasable catalog.
type ShopItems struct {
	Items []ShopItemInfo `json:"items"`
}

// PurchaseFeedback reports the outcome of a buy attempt.
type PurchaseFeedback struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ItemID  string `json:"item_id,omitempty"`
	Coins   int    `json:"coins"`
}

// PrivateChatInitiated tells each participant the derived room and peer.
type PrivateChatInitiated struct {
	RoomID   string `json:"room_id"`
	PeerSID  string `json:"peer_sid"`
	PeerName string `json:"peer_name"`
}

// PrivateMessage is a chat message scoped to a private room.
type PrivateMessage struct {
	RoomID     string `json:"room_id"`
	SenderSID  string `json:"sender_sid"`
	SenderName string `json:"sender_name"`
	Text       string `json:"message_text"`
	Timestamp  string `json:"timestamp"`
	IsAdmin    bool   `json:"is_admin_message"`
	Color      string `json:"color"`
}

// UserInfo is one registry entry in an admin user listing.
type UserInfo struct {
	SID     string `json:"sid"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Coins   int    `json:"coins"`
	IsAdmin bool   `json:"is_admin"`
	IsMuted bool   `json:"is_muted"`
}

// AdminUsersList is the full registry snapshot plus total count.
type AdminUsersList struct {
	Users []UserInfo `json:"users"`
	Total int        `json:"total"`
}

// ColorUpdate announces a user's color change.
type ColorUpdate struct {
	SID   string `json:"sid"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Announcement is a uniquely-identified admin broadcast.
type Announcement struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// DisconnectNotice is sent just before the server terminates a connection.
type DisconnectNotice struct {
	Reason string `json:"reason"`
}

// Error describes a protocol or domain error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
