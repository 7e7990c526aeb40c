package middleware

import (
	"strconv"
	"testing"
	"time"
)

func TestVerifySlackSignature(t *testing.T) {
	secret := "8f742231b10e8888abcd99yyyzzz85a5"
	body := []byte(`{"type":"event_callback"}`)
	now := time.Now()
	ts := strconv.FormatInt(now.Unix(), 10)

	sig := ComputeSlackSignature(secret, ts, body)

	if !VerifySlackSignature(secret, ts, sig, body, now) {
		t.Fatalf("valid signature rejected")
	}
	if VerifySlackSignature(secret, ts, sig, []byte("tampered"), now) {
		t.Fatalf("tampered body accepted")
	}
	if VerifySlackSignature("wrong-secret", ts, sig, body, now) {
		t.Fatalf("wrong secret accepted")
	}
	if VerifySlackSignature(secret, ts, "v0=deadbeef", body, now) {
		t.Fatalf("forged signature accepted")
	}
}

func TestVerifySlackSignatureReplayWindow(t *testing.T) {
	secret := "s3cret"
	body := []byte("payload=1")
	old := time.Now().Add(-10 * time.Minute)
	ts := strconv.FormatInt(old.Unix(), 10)

	sig := ComputeSlackSignature(secret, ts, body)
	if VerifySlackSignature(secret, ts, sig, body, time.Now()) {
		t.Fatalf("stale request accepted outside the replay window")
	}
}

func TestVerifySlackSignatureMalformedInputs(t *testing.T) {
	if VerifySlackSignature("", "123", "v0=x", nil, time.Now()) {
		t.Fatalf("empty secret accepted")
	}
	if VerifySlackSignature("s", "not-a-number", "v0=x", nil, time.Now()) {
		t.Fatalf("malformed timestamp accepted")
	}
	if VerifySlackSignature("s", "", "", nil, time.Now()) {
		t.Fatalf("missing headers accepted")
	}
}
