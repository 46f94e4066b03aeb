// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigner_SignMatchesHMAC(t *testing.T) {
	key := "secret-key"
	data := []byte(`{"deltas":[]}`)

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	want := hex.EncodeToString(h.Sum(nil))

	s := NewSigner(key)
	assert.True(t, s.Enabled())
	assert.Equal(t, want, s.Sign(data))
	assert.True(t, s.Verify(data, want))
}

func TestSigner_VerifyRejectsTampering(t *testing.T) {
	s := NewSigner("k")
	sig := s.Sign([]byte("original"))

	assert.False(t, s.Verify([]byte("tampered"), sig))
	assert.False(t, s.Verify([]byte("original"), "not-hex"))
}

func TestSigner_DisabledWithoutKey(t *testing.T) {
	s := NewSigner("")

	assert.False(t, s.Enabled())
	assert.Empty(t, s.Sign([]byte("x")))
	assert.True(t, s.Verify([]byte("x"), "anything"))

	var nilSigner *Signer
	assert.False(t, nilSigner.Enabled())
}
