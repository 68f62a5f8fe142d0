package entity

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now.Add(time.Hour)}

	if session.Expired(now) {
		t.Fatal("session should not be expired before its expiry")
	}
	if !session.Expired(now.Add(2 * time.Hour)) {
		t.Fatal("session should be expired after its expiry")
	}
}

func TestUser_HasPassword(t *testing.T) {
	local := &User{PasswordHash: "$argon2id$encoded"}
	external := &User{ExternalID: "google-sub"}

	if !local.HasPassword() {
		t.Fatal("account with a stored hash should report a password")
	}
	if external.HasPassword() {
		t.Fatal("external-only account should not report a password")
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(&TaskPatch{}).IsEmpty() {
		t.Fatal("zero patch should be empty")
	}

	title := "Renamed"
	if (&TaskPatch{Title: &title}).IsEmpty() {
		t.Fatal("patch with a field should not be empty")
	}
}

func TestIdentitySource_IsValid(t *testing.T) {
	for _, src := range []IdentitySource{IdentitySourceLocal, IdentitySourceExternal} {
		if !src.IsValid() {
			t.Fatalf("%s should be valid", src)
		}
	}
	if IdentitySource("ldap").IsValid() {
		t.Fatal("unknown source should be invalid")
	}
}
