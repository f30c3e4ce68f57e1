// Package tsig holds the transaction signature key shared by the zone
// transfer and dynamic update clients.
package tsig

import (
	"strings"
	"time"

	"github.com/miekg/dns"
)

const fudgeSeconds = 300

// Key is one TSIG key as configured by the operator.
type Key struct {
	Name      string `toml:"name"`
	Algorithm string `toml:"algorithm"` // defaults to hmac-sha256
	Secret    string `toml:"secret"`    // base64
}

// Configured reports whether a usable key is present.
func (k *Key) Configured() bool {
	return k != nil && k.Name != "" && k.Secret != ""
}

// Secrets returns the key name to secret map consumed by the dns client
// and transfer types.
func (k *Key) Secrets() map[string]string {
	return map[string]string{dns.Fqdn(k.Name): k.Secret}
}

// Sign appends the TSIG request record to the message.
func (k *Key) Sign(m *dns.Msg) {
	m.SetTsig(dns.Fqdn(k.Name), k.algorithm(), fudgeSeconds, time.Now().Unix())
}

func (k *Key) algorithm() string {
	switch strings.TrimSuffix(strings.ToLower(k.Algorithm), ".") {
	case "", "hmac-sha256":
		return dns.HmacSHA256
	case "hmac-sha1":
		return dns.HmacSHA1
	case "hmac-sha224":
		return dns.HmacSHA224
	case "hmac-sha384":
		return dns.HmacSHA384
	case "hmac-sha512":
		return dns.HmacSHA512
	default:
		return dns.Fqdn(strings.ToLower(k.Algorithm))
	}
}
