package core

import (
	"strings"
	"testing"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

func adminHub(t *testing.T) (*Hub, *fakeTransport, ConnID) {
	t.Helper()

	hub, ft := newTestHub(t, Options{AdminTrigger: "./admin-menu./"})
	admin := ConnID("admin")
	nameUser(t, hub, ft, admin, "./admin-menu./")
	return hub, ft, admin
}

func TestNonAdminModerationDenied(t *testing.T) {
	hub, ft := newTestHub(t, Options{})

	nameUser(t, hub, ft, "a", "alice")
	nameUser(t, hub, ft, "b", "bob")

	hub.Dispatch(&Command{
		Kind:  CommandAdmin,
		From:  "a",
		Admin: &AdminAction{Kind: AdminMuteUser, Target: "b"},
	})

	ev := mustEvent(t, ft, "a", proto.EventError)
	if e := ev.payload.(proto.Error); e.Code != ErrCodeNotAuthorized {
		t.Fatalf("expected not_authorized, got %+v", e)
	}

	barrier(t, hub, ft)
	if u, _ := hub.registry.Get("b"); u.Muted {
		t.Fatal("non-admin mute must not change state")
	}
}

func TestMuteAndUnmute(t *testing.T) {
	hub, ft, admin := adminHub(t)
	nameUser(t, hub, ft, "x", "xavier")

	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminMuteUser, Target: "x"}})

	ev := mustEvent(t, ft, "x", proto.EventSystemMessage)
	if sm := ev.payload.(proto.SystemMessage); !strings.Contains(sm.Message, "muted") {
		t.Fatalf("target notice = %+v", sm)
	}
	mustEvent(t, ft, admin, proto.EventSystemMessage) // public broadcast reaches the admin too

	barrier(t, hub, ft)
	if u, _ := hub.registry.Get("x"); !u.Muted {
		t.Fatal("target should be muted")
	}

	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminUnmuteUser, Target: "x"}})
	barrier(t, hub, ft)
	if u, _ := hub.registry.Get("x"); u.Muted {
		t.Fatal("target should be unmuted")
	}
}

func TestMuteUnknownTargetReportsNotFound(t *testing.T) {
	hub, ft, admin := adminHub(t)

	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminMuteUser, Target: "ghost"}})

	ev := mustEvent(t, ft, admin, proto.EventError)
	if e := ev.payload.(proto.Error); e.Code != ErrCodeNotFound {
		t.Fatalf("expected not_found, got %+v", e)
	}
}

func TestKickRemovesTarget(t *testing.T) {
	hub, ft, admin := adminHub(t)
	nameUser(t, hub, ft, "x", "xavier")
	nameUser(t, hub, ft, "o", "observer")

	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminKickUser, Target: "x"}})

	mustEvent(t, ft, "x", proto.EventDisconnectClient)
	ev := mustEvent(t, ft, "o", proto.EventSystemMessage)
	if sm := ev.payload.(proto.SystemMessage); !strings.Contains(sm.Message, "kicked") {
		t.Fatalf("public notice = %+v", sm)
	}

	barrier(t, hub, ft)
	if !ft.wasTerminated("x") {
		t.Fatal("target should have been terminated")
	}
	if _, ok := hub.registry.Get("x"); ok {
		t.Fatal("target should be removed from the registry")
	}
}

func TestKickMissingTargetReportsToAdminOnly(t *testing.T) {
	hub, ft, admin := adminHub(t)
	nameUser(t, hub, ft, "o", "observer")

	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminKickUser, Target: "ghost"}})

	ev := mustEvent(t, ft, admin, proto.EventSystemMessage)
	if sm := ev.payload.(proto.SystemMessage); !strings.Contains(sm.Message, "not found") {
		t.Fatalf("admin notice = %+v", sm)
	}

	barrier(t, hub, ft)
	for _, s := range ft.eventsFor("o", proto.EventSystemMessage) {
		if sm, ok := s.payload.(proto.SystemMessage); ok && strings.Contains(sm.Message, "not found") {
			t.Fatal("missing-target outcome must not be broadcast")
		}
	}
}

func TestBanDisconnectsMatchingUsersAndBlocksName(t *testing.T) {
	hub, ft, admin := adminHub(t)
	nameUser(t, hub, ft, "t1", "Target")
	nameUser(t, hub, ft, "t2", "Target") // exact duplicate, gets a suffix; must survive the ban

	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminBanName, TargetName: "target"}})

	mustEvent(t, ft, "t1", proto.EventDisconnectClient)
	barrier(t, hub, ft)

	if !ft.wasTerminated("t1") {
		t.Fatal("matching user should have been disconnected")
	}
	if _, ok := hub.registry.Get("t1"); ok {
		t.Fatal("matching user should be removed from the registry")
	}
	if _, ok := hub.registry.Get("t2"); !ok {
		t.Fatal("suffixed user does not fold to the banned name and must stay")
	}

	// Any future claim of the banned name, in any casing, is rejected.
	hub.Dispatch(&Command{Kind: CommandSetName, From: "n", Name: "TARGET"})
	mustEvent(t, ft, "n", proto.EventDisconnectClient)
	barrier(t, hub, ft)
	if _, ok := hub.registry.Get("n"); ok {
		t.Fatal("banned name must not register")
	}

	// Unban only lifts the block; it restores nobody.
	hub.Dispatch(&Command{Kind: CommandAdmin, From: admin, Admin: &AdminAction{Kind: AdminUnbanName, TargetName: "target"}})
	barrier(t, hub, ft)
	if _, ok := hub.registry.Get("t1"); ok {
		t.Fatal("unban must not restore disconnected users")
	}
	if got := nameUser(t, hub, ft, "n2", "target"); got != "target" {
		t.Fatalf("name after unban = %q, want target", got)
	}
}
