package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSetName claims or re-claims a display identity.
	CommandSetName CommandKind = iota
	// CommandSendMessage delivers a chat message to the general room.
	CommandSendMessage
	// CommandBuyItem purchases a shop item with the sender's coins.
	CommandBuyItem
	// CommandGetShopItems requests the purchasable catalog.
	CommandGetShopItems
	// CommandStartPrivateChat opens a two-party private room.
	CommandStartPrivateChat
	// CommandSendPrivateMessage delivers a message to a private room.
	CommandSendPrivateMessage
	// CommandAdmin routes a tagged admin action through the dispatcher.
	CommandAdmin
	// CommandDisconnect tears down all state for a closed connection.
	CommandDisconnect
)

// Command represents an action requested by a connection. From is always the
// sender's connection id; the remaining fields are kind-specific.
type Command struct {
	Kind   CommandKind
	From   ConnID
	Name   string
	Text   string
	ItemID string
	Target ConnID
	Room   string
	Admin  *AdminAction
}

// AdminKind enumerates the closed set of admin dispatcher branches.
type AdminKind int

const (
	// AdminUnknown is any command type the dispatcher does not recognize.
	AdminUnknown AdminKind = iota
	// AdminGetUsers returns a registry snapshot plus total count.
	AdminGetUsers
	// AdminClearChat broadcasts a clear-display signal to the general room.
	AdminClearChat
	// AdminChangeColor sets a target user's display color.
	AdminChangeColor
	// AdminAnnounce broadcasts a uniquely-identified announcement.
	AdminAnnounce
	// AdminMuteUser silences a target user.
	AdminMuteUser
	// AdminUnmuteUser lifts a target user's mute.
	AdminUnmuteUser
	// AdminBanName bans a display name and disconnects current holders.
	AdminBanName
	// AdminUnbanName lifts a name ban.
	AdminUnbanName
	// AdminKickUser force-terminates a target connection.
	AdminKickUser
)

// AdminAction is an admin command after boundary validation. Raw preserves
// the original type string for unknown-command reporting.
type AdminAction struct {
	Kind       AdminKind
	Raw        string
	Target     ConnID
	TargetName string
	Color      string
	Message    string
}
