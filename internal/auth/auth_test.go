package auth

import (
	"errors"
	"testing"
	"time"
)

func TestPinHashing(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr error
	}{
		{name: "four digits accepted", pin: "1234"},
		{name: "longer numeric accepted", pin: "123456"},
		{name: "too short rejected", pin: "123", wantErr: ErrWeakPin},
		{name: "non-numeric rejected", pin: "12ab", wantErr: ErrWeakPin},
		{name: "empty rejected", pin: "", wantErr: ErrWeakPin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPin(tt.pin)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HashPin failed: %v", err)
			}
			if hash == tt.pin || hash == "" {
				t.Error("hash must not equal or be empty")
			}
			if err := VerifyPin(hash, tt.pin); err != nil {
				t.Errorf("VerifyPin with correct PIN failed: %v", err)
			}
			if err := VerifyPin(hash, "0000"); !errors.Is(err, ErrInvalidPin) {
				t.Errorf("VerifyPin with wrong PIN = %v, want ErrInvalidPin", err)
			}
		})
	}

	t.Run("verify without configured PIN", func(t *testing.T) {
		if err := VerifyPin("", "1234"); !errors.Is(err, ErrPinNotSet) {
			t.Errorf("err = %v, want ErrPinNotSet", err)
		}
	})
}

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := m.Validate(token); err != nil {
		t.Errorf("Validate of fresh token failed: %v", err)
	}

	t.Run("garbage token rejected", func(t *testing.T) {
		if err := m.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("token from a different secret rejected", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		stolen, err := other.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if err := m.Validate(stolen); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		short := NewTokenManager("test-secret", -time.Minute)
		expired, err := short.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if err := m.Validate(expired); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}

func TestBiometric(t *testing.T) {
	t.Run("unavailable answers false without error", func(t *testing.T) {
		var b Unavailable
		if b.HasHardware() || b.IsEnrolled() {
			t.Error("Unavailable must report no capability")
		}
		ok, err := b.Authenticate("unlock")
		if ok || err != nil {
			t.Errorf("Authenticate = %v, %v; want false, nil", ok, err)
		}
	})

	t.Run("static biometric requires hardware and enrollment", func(t *testing.T) {
		b := StaticBiometric{Hardware: true, Enrolled: false, Accept: true}
		if ok, _ := b.Authenticate("unlock"); ok {
			t.Error("Authenticate succeeded without enrollment")
		}
		b.Enrolled = true
		if ok, _ := b.Authenticate("unlock"); !ok {
			t.Error("Authenticate failed despite acceptance")
		}
	})
}
