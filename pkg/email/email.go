package email

import (
	"net/mail"
	"strings"
)

// Valid reports whether addr is a bare mailbox address such as
// "ann@example.org". Display names and angle brackets are rejected.
func Valid(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	at := strings.LastIndexByte(addr, '@')
	return at > 0 && strings.Contains(addr[at+1:], ".")
}

// Normalize trims addr and lowercases its domain. The local part keeps its
// case since mail servers may treat it as significant.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return addr
	}
	return addr[:at+1] + strings.ToLower(addr[at+1:])
}
