package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/labstack/echo/v4"
)

// NetList matches client addresses against a set of addresses and networks.
// It backs both the banned client gate and the trusted proxy list.
type NetList struct {
	prefixes []netip.Prefix
}

// ParseNetList reads entries separated by spaces or commas. An entry is an
// address ("10.0.0.7"), a CIDR network ("10.0.0.0/8") or a network with a
// dotted netmask ("10.0.0.0/255.0.0.0").
func ParseNetList(s string) (*NetList, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	list := &NetList{}
	for _, f := range fields {
		p, err := parseNetEntry(f)
		if err != nil {
			return nil, err
		}
		list.prefixes = append(list.prefixes, p)
	}
	return list, nil
}

func parseNetEntry(entry string) (netip.Prefix, error) {
	addrPart, maskPart, hasMask := strings.Cut(entry, "/")
	if !hasMask {
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid address %q: %w", entry, err)
		}
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}

	if !strings.Contains(maskPart, ".") {
		p, err := netip.ParsePrefix(entry)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid network %q: %w", entry, err)
		}
		return p.Masked(), nil
	}

	addr, err := netip.ParseAddr(addrPart)
	if err != nil || !addr.Is4() {
		return netip.Prefix{}, fmt.Errorf("invalid network %q: netmask needs an IPv4 address", entry)
	}
	bits, err := maskBits(maskPart)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid network %q: %w", entry, err)
	}
	return netip.PrefixFrom(addr, bits).Masked(), nil
}

// maskBits converts a dotted IPv4 netmask into a prefix length. Masks with
// holes are rejected.
func maskBits(mask string) (int, error) {
	m, err := netip.ParseAddr(mask)
	if err != nil || !m.Is4() {
		return 0, fmt.Errorf("invalid netmask %q", mask)
	}
	b := m.As4()
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	bits := 0
	for v&(1<<31) != 0 {
		bits++
		v <<= 1
	}
	if v != 0 {
		return 0, fmt.Errorf("netmask %q is not contiguous", mask)
	}
	return bits, nil
}

func (l *NetList) Empty() bool {
	return l == nil || len(l.prefixes) == 0
}

// Contains reports whether ip lies in any listed network. Unparsable input
// is never contained.
func (l *NetList) Contains(ip string) bool {
	if l.Empty() {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range l.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// IPNets returns the listed networks for echo's trusted proxy options.
func (l *NetList) IPNets() []*net.IPNet {
	if l.Empty() {
		return nil
	}
	nets := make([]*net.IPNet, 0, len(l.prefixes))
	for _, p := range l.prefixes {
		nets = append(nets, &net.IPNet{
			IP:   net.IP(p.Addr().AsSlice()),
			Mask: net.CIDRMask(p.Bits(), p.Addr().BitLen()),
		})
	}
	return nets
}

// IPBan rejects requests from banned clients with 403. The client address is
// whatever the echo IPExtractor resolves.
func IPBan(list *NetList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if list.Contains(ip) {
				slog.Warn("Rejected request from banned address", "ip", ip, "uri", c.Request().RequestURI)
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
