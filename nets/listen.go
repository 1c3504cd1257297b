package nets

import (
	"context"
	"net"

	"github.com/Pilan-AI/hermes-lang/hermconfigs"
	"github.com/Pilan-AI/hermes-lang/logs"
	"golang.org/x/net/netutil"
)

// Listen opens a TCP listener that accepts at most HelpMaxConns
// connections at a time. An empty addr means HelpAddr.
type Listen func(ctx context.Context, addr string) (net.Listener, error)

func (Module) Listen(
	defaultAddr hermconfigs.HelpAddr,
	maxConns hermconfigs.HelpMaxConns,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Listen {
	return func(ctx context.Context, addr string) (net.Listener, error) {
		if addr == "" {
			addr = string(defaultAddr)
		}
		if local, err := isLocalAddr(addr); err != nil {
			return nil, err
		} else if !local {
			logger.WarnContext(ctx, "listening on non-local address", "addr", addr)
		}

		var config net.ListenConfig
		ln, err := config.Listen(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}
		if maxConns > 0 {
			ln = netutil.LimitListener(ln, int(maxConns))
		}
		logger.InfoContext(ctx, "listening",
			"addr", ln.Addr().String(),
			"max conns", int(maxConns),
		)
		return ln, nil
	}
}
