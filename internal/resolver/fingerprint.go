package resolver

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

const (
	SessionParam       = "session"
	NoFingerprintParam = "noFingerprint"

	// SharedKey - the key every visitor asking for noFingerprint plays under.
	SharedKey = "player"

	// ExplicitKeyPrefix - explicit keys live apart from SharedKey and fingerprints.
	ExplicitKeyPrefix = "s:"

	maxKeyLength = 128
	digestLength = 16
	ipv4Prefix   = 24
	ipv6Prefix   = 48
)

// Fingerprint - maps a request to a session key. An explicit ?session= wins,
// ?noFingerprint= selects the shared key, otherwise the key is derived from
// the User-Agent and the network the client connects from.
type Fingerprint struct{}

func NewFingerprint() *Fingerprint {
	return &Fingerprint{}
}

func (that *Fingerprint) Resolve(r *http.Request) string {
	query := r.URL.Query()

	if key := strings.TrimSpace(query.Get(SessionParam)); key != "" {
		return explicitKey(key)
	}

	if query.Get(NoFingerprintParam) != "" {
		return SharedKey
	}

	digest := xxhash.New()
	_, _ = digest.WriteString(r.UserAgent())
	_, _ = digest.WriteString("\x00")
	_, _ = digest.WriteString(networkClass(r.RemoteAddr))

	return strconv.FormatUint(digest.Sum64(), 16)
}

// explicitKey - prefixed key of at most maxKeyLength bytes. A longer key keeps
// its head cut on a rune boundary followed by the digest of the whole key.
func explicitKey(key string) string {
	key = ExplicitKeyPrefix + strings.ToValidUTF8(key, string(utf8.RuneError))
	if len(key) <= maxKeyLength {
		return key
	}

	suffix := fmt.Sprintf("~%0*x", digestLength, xxhash.Sum64String(key))

	return truncateRunes(key, maxKeyLength-len(suffix)) + suffix
}

// truncateRunes - longest prefix of s not over n bytes that ends on a rune boundary.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}

// networkClass - the /24 (IPv4) or /48 (IPv6) the address belongs to, or the
// raw address when it does not parse.
func networkClass(remoteAddr string) string {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return host
	}

	addr = addr.Unmap()

	bits := ipv6Prefix
	if addr.Is4() {
		bits = ipv4Prefix
	}

	prefix, err := addr.WithZone("").Prefix(bits)
	if err != nil {
		return host
	}

	return prefix.String()
}
