package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHashPasswordKnownVector(t *testing.T) {
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := rapid.String().Draw(rt, "password")
		if !VerifyPassword(p, HashPassword(p)) {
			rt.Fatalf("verify(%q, hash(%q)) = false", p, p)
		}
	})
}

func TestHashPasswordDistinguishesInputs(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p1 := rapid.String().Draw(rt, "p1")
		p2 := rapid.String().Filter(func(s string) bool { return s != p1 }).Draw(rt, "p2")
		if HashPassword(p1) == HashPassword(p2) {
			rt.Fatalf("hash collision between %q and %q", p1, p2)
		}
		if VerifyPassword(p2, HashPassword(p1)) {
			rt.Fatalf("verify accepted %q for digest of %q", p2, p1)
		}
	})
}

func TestMintSessionTokenIsPure(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.IntRange(1, 1<<31).Draw(rt, "id")
		name := rapid.StringMatching(`[a-z0-9_]{1,16}`).Draw(rt, "username")
		role := rapid.SampledFrom([]string{"admin", "guest", "editor"}).Draw(rt, "role")

		first := MintSessionToken(id, name, role)
		if first != MintSessionToken(id, name, role) {
			rt.Fatalf("token for (%d, %q, %q) is not deterministic", id, name, role)
		}
		if first != HashPassword(fmt.Sprintf("%d:%s:%s", id, name, role)) {
			rt.Fatalf("token does not digest id:username:role")
		}
	})
}

func TestMintSessionTokenChangesWithEachArgument(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.IntRange(1, 1<<20).Draw(rt, "id")
		name := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "username")
		role := rapid.SampledFrom([]string{"admin", "guest"}).Draw(rt, "role")
		base := MintSessionToken(id, name, role)

		if base == MintSessionToken(id+1, name, role) {
			rt.Fatalf("changing id kept the token")
		}
		if base == MintSessionToken(id, name+"x", role) {
			rt.Fatalf("changing username kept the token")
		}
		other := "admin"
		if role == "admin" {
			other = "guest"
		}
		if base == MintSessionToken(id, name, other) {
			rt.Fatalf("changing role kept the token")
		}
	})
}
