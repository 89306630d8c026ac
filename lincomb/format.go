// SPDX-License-Identifier: MIT

package lincomb

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// FingerprintSize is the digest length in bytes (hex string is twice that).
const FingerprintSize = 32

// fingerprintLabel domain-separates combination digests.
const fingerprintLabel = "model-s4plus/lincomb/v1"

// String renders c deterministically, e.g. "p⊗q⊗1 - 2·1⊗1⊗q"; 0 for Zero.
func (c Combination) String() string {
	if len(c.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, tm := range c.Terms() {
		k := tm.Coeff
		switch {
		case i == 0 && k < 0:
			sb.WriteString("-")
		case i > 0 && k < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if k < 0 {
			k = -k
		}
		if k != 1 {
			sb.WriteString(strconv.FormatInt(k, 10))
			sb.WriteString("·")
		}
		sb.WriteString(tm.Tensor.String())
	}

	return sb.String()
}

// Fingerprint returns the hex SHAKE-256 digest of c's canonical encoding
// (terms sorted by tensor.Compare). Equal combinations have equal digests.
func (c Combination) Fingerprint() string {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte(fingerprintLabel)); err != nil {
		panic(fmt.Errorf("Fingerprint: write label: %w", err))
	}
	for _, tm := range c.Terms() {
		line := tm.Tensor.String() + "\x00" + strconv.FormatInt(tm.Coeff, 10) + "\n"
		if _, err := h.Write([]byte(line)); err != nil {
			panic(fmt.Errorf("Fingerprint: write term: %w", err))
		}
	}
	out := make([]byte, FingerprintSize)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("Fingerprint: read output: %w", err))
	}

	return hex.EncodeToString(out)
}
