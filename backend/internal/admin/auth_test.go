package admin

import (
	"testing"
	"time"
)

func TestAuth_LoginAndVerify(t *testing.T) {
	a := NewAuth("hunter2")

	token, err := a.Login("hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := a.Verify(token); err != nil {
		t.Errorf("fresh token rejected: %v", err)
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	a := NewAuth("hunter2")
	if _, err := a.Login("letmein"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestAuth_EmptyConfiguredPassword(t *testing.T) {
	// No password configured means the admin surface is closed, not open.
	a := NewAuth("")
	if _, err := a.Login(""); err == nil {
		t.Error("login succeeded with no password configured")
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	a := NewAuth("hunter2")
	issued := time.Now()
	a.now = func() time.Time { return issued }

	token, err := a.Login("hunter2")
	if err != nil {
		t.Fatal(err)
	}

	a.now = func() time.Time { return issued.Add(SessionTTL - time.Minute) }
	if err := a.Verify(token); err != nil {
		t.Errorf("token rejected before TTL: %v", err)
	}

	a.now = func() time.Time { return issued.Add(SessionTTL + time.Minute) }
	if err := a.Verify(token); err == nil {
		t.Error("token accepted past TTL")
	}
}

func TestAuth_TokenBoundToPassword(t *testing.T) {
	a := NewAuth("hunter2")
	token, _ := a.Login("hunter2")

	rotated := NewAuth("correct horse")
	if err := rotated.Verify(token); err == nil {
		t.Error("token survived a password rotation")
	}
}

func TestAuth_GarbageTokens(t *testing.T) {
	a := NewAuth("hunter2")
	for _, tok := range []string{"", "notbase64!", "bm90LWEtdG9rZW4=", "MTIzNA=="} {
		if err := a.Verify(tok); err == nil {
			t.Errorf("garbage token %q accepted", tok)
		}
	}
}
