package http

import (
	"encoding/json"
	"strings"

	"github.com/zes0-cmd/chat-appv2/internal/core"
	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// inboundToCommand validates an inbound frame and maps it to a core command.
// A non-nil *proto.Error means the frame was well-formed JSON but failed
// validation; it is answered on the connection and never reaches the hub.
func inboundToCommand(from core.ConnID, inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundSetName:
		var data proto.SetNameData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if strings.TrimSpace(data.Name) == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "name is required"}, nil
		}
		return &core.Command{Kind: core.CommandSetName, From: from, Name: data.Name}, nil, nil

	case proto.InboundSendMessage:
		var data proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if strings.TrimSpace(data.Text) == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "text is required"}, nil
		}
		return &core.Command{Kind: core.CommandSendMessage, From: from, Text: data.Text}, nil, nil

	case proto.InboundBuyItem:
		var data proto.BuyItemData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.ItemID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "item_id is required"}, nil
		}
		return &core.Command{Kind: core.CommandBuyItem, From: from, ItemID: data.ItemID}, nil, nil

	case proto.InboundGetShopItems:
		return &core.Command{Kind: core.CommandGetShopItems, From: from}, nil, nil

	case proto.InboundStartPrivateChat:
		var data proto.StartPrivateChatData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.TargetSID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_sid is required"}, nil
		}
		return &core.Command{Kind: core.CommandStartPrivateChat, From: from, Target: core.ConnID(data.TargetSID)}, nil, nil

	case proto.InboundSendPrivateMessage:
		var data proto.SendPrivateMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomID == "" || strings.TrimSpace(data.Text) == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room_id and text are required"}, nil
		}
		return &core.Command{Kind: core.CommandSendPrivateMessage, From: from, Room: data.RoomID, Text: data.Text}, nil, nil

	case proto.InboundAdminCommand:
		var data proto.AdminCommandData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		act, protoErr := adminAction(data)
		if protoErr != nil {
			return nil, protoErr, nil
		}
		return &core.Command{Kind: core.CommandAdmin, From: from, Admin: act}, nil, nil

	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

// adminAction narrows the free-form admin envelope to a closed command set,
// checking the fields each branch needs. Unrecognized types pass through so
// the dispatcher can answer them behind the authorization gate.
func adminAction(data proto.AdminCommandData) (*core.AdminAction, *proto.Error) {
	act := &core.AdminAction{
		Raw:        data.Type,
		Target:     core.ConnID(data.TargetSID),
		TargetName: data.TargetName,
		Color:      data.Color,
		Message:    data.Message,
	}

	switch data.Type {
	case "get_users":
		act.Kind = core.AdminGetUsers
	case "refresh_all_chat", "clear_chat":
		act.Kind = core.AdminClearChat
	case "change_user_color", "change_color":
		if data.TargetSID == "" || data.Color == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_sid and color are required"}
		}
		act.Kind = core.AdminChangeColor
	case "announce":
		if strings.TrimSpace(data.Message) == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message is required"}
		}
		act.Kind = core.AdminAnnounce
	case "mute_user":
		if data.TargetSID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_sid is required"}
		}
		act.Kind = core.AdminMuteUser
	case "unmute_user":
		if data.TargetSID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_sid is required"}
		}
		act.Kind = core.AdminUnmuteUser
	case "kick_user":
		if data.TargetSID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_sid is required"}
		}
		act.Kind = core.AdminKickUser
	case "ban_name":
		if strings.TrimSpace(data.TargetName) == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_name is required"}
		}
		act.Kind = core.AdminBanName
	case "unban_name":
		if strings.TrimSpace(data.TargetName) == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target_name is required"}
		}
		act.Kind = core.AdminUnbanName
	default:
		act.Kind = core.AdminUnknown
	}
	return act, nil
}
