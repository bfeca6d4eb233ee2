package requestcontext

import (
	"context"
	"log/slog"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader names a header set by the edge proxy (e.g. CF-Connecting-IP). It wins over everything else.
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// TrustedProxiesIP lists the CIDR ranges of every proxy between the client and the server.
	// X-Forwarded-For is walked backwards and the first untrusted address is the client.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`

	// EnableRejectMalformedRequest answers 403 when a proxied request yields no usable client address.
	EnableRejectMalformedRequest bool `mapstructure:"enable_reject_malformed_request"`
}

// GetClientIP returns the client address stored by WithClientIP, or empty string.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// WithClientIP resolves the client address with X-Forwarded-For spoofing protection.
func WithClientIP(config WithClientIPConfig) (Option, error) {
	trusted, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		with := func(ip string) (context.Context, error) {
			return context.WithValue(ctx, clientIPKey{}, ip), nil
		}

		if config.TrustedHeader != "" {
			if ip := c.Get(config.TrustedHeader); net.ParseIP(ip) != nil {
				return with(ip)
			}
		}

		forwarded := c.IPs()
		if len(forwarded) == 0 {
			return with(c.IP())
		}

		if len(trusted) > 0 {
			for i := len(forwarded) - 1; i >= 0; i-- {
				ip := net.ParseIP(forwarded[i])
				if ip != nil && !lo.SomeBy(trusted, func(n *net.IPNet) bool { return n.Contains(ip) }) {
					return with(ip.String())
				}
			}
			return with(forwarded[0])
		}

		if config.EnableRejectMalformedRequest {
			logger.WarnContext(ctx, "IP Spoofing detected, returning 403 Forbidden",
				slog.String("event", "requestcontext/ip_spoofing_detected"),
				slog.String("ip", c.IP()),
				slog.Any("ips", forwarded),
			)
			return nil, &RejectError{Status: fiber.StatusForbidden, Message: "not allowed to access"}
		}
		return with(forwarded[0])
	}, nil
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, ipnet, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR for %q", r)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}
