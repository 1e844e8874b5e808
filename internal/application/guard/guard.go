package guard

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"rodut/internal/domain/ingest"
)

const (
	HeaderClientIP     = "Client-IP"
	HeaderForwardedFor = "X-Forwarded-For"
)

// Guard admits a request when the caller address is allowlisted and the
// supplied key matches the credential.
type Guard struct {
	allowed    []netip.Addr
	credential Credential
}

// New parses the allowlist once; it is immutable afterwards.
func New(allowedCallers []string, credential Credential) (*Guard, error) {
	allowed := make([]netip.Addr, 0, len(allowedCallers))
	for _, s := range allowedCallers {
		addr, err := netip.ParseAddr(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("allowed caller %q: %w", s, err)
		}
		allowed = append(allowed, addr.Unmap())
	}

	return &Guard{allowed: allowed, credential: credential}, nil
}

// Admit checks the caller address first, then the key. The address check
// wins, so a foreign caller is denied whatever key it sends.
func (g *Guard) Admit(ip, key string) error {
	if !g.CallerAllowed(ip) {
		return ingest.New(ingest.AccessDenied, ingest.MsgAccessDenied)
	}

	if !g.credential.Verify(key) {
		return ingest.New(ingest.InvalidCredential, ingest.MsgInvalidCredential)
	}

	return nil
}

// CallerAllowed reports whether ip is on the allowlist.
func (g *Guard) CallerAllowed(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, a := range g.allowed {
		if a == addr {
			return true
		}
	}

	return false
}

// ClientIP resolves the caller address: Client-IP header, then the first
// X-Forwarded-For entry, then the connection's remote address.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get(HeaderClientIP)); ip != "" {
		return ip
	}

	if fwd := r.Header.Get(HeaderForwardedFor); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
