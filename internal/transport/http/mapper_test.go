package http

import (
	"encoding/json"
	"testing"

	"github.com/zes0-cmd/chat-appv2/internal/core"
	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

func inbound(t *testing.T, typ string, data any) proto.Inbound {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return proto.Inbound{Type: typ, Data: raw}
}

func TestInboundToCommand(t *testing.T) {
	tests := []struct {
		name     string
		in       proto.Inbound
		wantKind core.CommandKind
		wantErr  string
	}{
		{
			name:     "set name",
			in:       inbound(t, proto.InboundSetName, proto.SetNameData{Name: "alice"}),
			wantKind: core.CommandSetName,
		},
		{
			name:    "set name empty",
			in:      inbound(t, proto.InboundSetName, proto.SetNameData{Name: "  "}),
			wantErr: core.ErrCodeBadRequest,
		},
		{
			name:     "send message",
			in:       inbound(t, proto.InboundSendMessage, proto.SendMessageData{Text: "hi"}),
			wantKind: core.CommandSendMessage,
		},
		{
			name:    "send message empty",
			in:      inbound(t, proto.InboundSendMessage, proto.SendMessageData{}),
			wantErr: core.ErrCodeBadRequest,
		},
		{
			name:     "buy item",
			in:       inbound(t, proto.InboundBuyItem, proto.BuyItemData{ItemID: "color_red"}),
			wantKind: core.CommandBuyItem,
		},
		{
			name:     "get shop items",
			in:       proto.Inbound{Type: proto.InboundGetShopItems, Data: json.RawMessage(`{}`)},
			wantKind: core.CommandGetShopItems,
		},
		{
			name:     "start private chat",
			in:       inbound(t, proto.InboundStartPrivateChat, proto.StartPrivateChatData{TargetSID: "x"}),
			wantKind: core.CommandStartPrivateChat,
		},
		{
			name:    "private message without room",
			in:      inbound(t, proto.InboundSendPrivateMessage, proto.SendPrivateMessageData{Text: "hi"}),
			wantErr: core.ErrCodeBadRequest,
		},
		{
			name:     "private message",
			in:       inbound(t, proto.InboundSendPrivateMessage, proto.SendPrivateMessageData{RoomID: "private_a_b", Text: "hi"}),
			wantKind: core.CommandSendPrivateMessage,
		},
		{
			name:     "admin command",
			in:       inbound(t, proto.InboundAdminCommand, proto.AdminCommandData{Type: "get_users"}),
			wantKind: core.CommandAdmin,
		},
		{
			name:    "admin mute without target",
			in:      inbound(t, proto.InboundAdminCommand, proto.AdminCommandData{Type: "mute_user"}),
			wantErr: core.ErrCodeBadRequest,
		},
		{
			name:    "admin ban without name",
			in:      inbound(t, proto.InboundAdminCommand, proto.AdminCommandData{Type: "ban_name"}),
			wantErr: core.ErrCodeBadRequest,
		},
		{
			name:    "unknown type",
			in:      proto.Inbound{Type: "teleport", Data: json.RawMessage(`{}`)},
			wantErr: "invalid_message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, protoErr, err := inboundToCommand("conn-1", tt.in)
			if err != nil {
				t.Fatalf("unexpected mapping error: %v", err)
			}
			if tt.wantErr != "" {
				if protoErr == nil || protoErr.Code != tt.wantErr {
					t.Fatalf("protoErr = %+v, want code %q", protoErr, tt.wantErr)
				}
				return
			}
			if protoErr != nil {
				t.Fatalf("unexpected protocol error: %+v", protoErr)
			}
			if cmd.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", cmd.Kind, tt.wantKind)
			}
			if cmd.From != "conn-1" {
				t.Fatalf("from = %q, want conn-1", cmd.From)
			}
		})
	}
}

func TestAdminActionNarrowing(t *testing.T) {
	tests := []struct {
		typ  string
		data proto.AdminCommandData
		want core.AdminKind
	}{
		{"get_users", proto.AdminCommandData{Type: "get_users"}, core.AdminGetUsers},
		{"refresh_all_chat", proto.AdminCommandData{Type: "refresh_all_chat"}, core.AdminClearChat},
		{"clear_chat", proto.AdminCommandData{Type: "clear_chat"}, core.AdminClearChat},
		{"change_user_color", proto.AdminCommandData{Type: "change_user_color", TargetSID: "x", Color: "#123456"}, core.AdminChangeColor},
		{"change_color", proto.AdminCommandData{Type: "change_color", TargetSID: "x", Color: "#123456"}, core.AdminChangeColor},
		{"announce", proto.AdminCommandData{Type: "announce", Message: "hello"}, core.AdminAnnounce},
		{"mute_user", proto.AdminCommandData{Type: "mute_user", TargetSID: "x"}, core.AdminMuteUser},
		{"unmute_user", proto.AdminCommandData{Type: "unmute_user", TargetSID: "x"}, core.AdminUnmuteUser},
		{"kick_user", proto.AdminCommandData{Type: "kick_user", TargetSID: "x"}, core.AdminKickUser},
		{"ban_name", proto.AdminCommandData{Type: "ban_name", TargetName: "troll"}, core.AdminBanName},
		{"unban_name", proto.AdminCommandData{Type: "unban_name", TargetName: "troll"}, core.AdminUnbanName},
		{"frobnicate", proto.AdminCommandData{Type: "frobnicate"}, core.AdminUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			act, protoErr := adminAction(tt.data)
			if protoErr != nil {
				t.Fatalf("unexpected protocol error: %+v", protoErr)
			}
			if act.Kind != tt.want {
				t.Fatalf("kind = %v, want %v", act.Kind, tt.want)
			}
			if act.Raw != tt.typ {
				t.Fatalf("raw = %q, want %q", act.Raw, tt.typ)
			}
		})
	}
}
