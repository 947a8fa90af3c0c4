package session

import (
	"errors"
	"testing"
	"time"

	"github.com/cogbio/labsite/internal/models"
)

func testIdentity() Identity {
	memberID := uint(7)
	return Identity{
		AccountID: 42,
		Email:     "a@lab.org",
		Name:      "Ada Lovelace",
		Role:      models.RoleMember,
		MemberID:  &memberID,
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("unit-test-secret")
	token, err := codec.Sign(testIdentity(), TokenTTL)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify freshly signed token: %v", err)
	}
	want := testIdentity()
	if identity.AccountID != want.AccountID || identity.Email != want.Email ||
		identity.Name != want.Name || identity.Role != want.Role {
		t.Fatalf("claims mismatch after round trip: %+v", identity)
	}
	if identity.MemberID == nil || *identity.MemberID != *want.MemberID {
		t.Fatalf("member link lost in round trip: %v", identity.MemberID)
	}
}

func TestVerifySuperAdminSyntheticID(t *testing.T) {
	codec := NewCodec("unit-test-secret")
	token, err := codec.Sign(Identity{
		AccountID: 0,
		Email:     "admin",
		Name:      "Super Admin",
		Role:      models.RoleSuperAdmin,
	}, TokenTTL)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	identity, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify super-admin token: %v", err)
	}
	if identity.AccountID != 0 || identity.Role != models.RoleSuperAdmin {
		t.Fatalf("expected synthetic super-admin identity, got %+v", identity)
	}
	if identity.MemberID != nil {
		t.Fatalf("super-admin must not carry a member link, got %v", identity.MemberID)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("unit-test-secret")
	token, err := codec.Sign(testIdentity(), TokenTTL)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := codec.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	codec := NewCodec("unit-test-secret")
	token, err := codec.Sign(testIdentity(), -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := codec.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewCodec("secret-one").Sign(testIdentity(), TokenTTL)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := NewCodec("secret-two").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	codec := NewCodec("unit-test-secret")
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := codec.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestSignDefaultsTTL(t *testing.T) {
	codec := NewCodec("unit-test-secret")
	token, err := codec.Sign(testIdentity(), 0)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := codec.Verify(token); err != nil {
		t.Fatalf("expected zero ttl to fall back to TokenTTL, got %v", err)
	}
}
