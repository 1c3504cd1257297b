package helps

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}

// ServeTCP answers requests on every accepted connection until ctx is
// done. Connections are independent.
type ServeTCP func(ctx context.Context, addr string) error

func (Module) ServeTCP(
	listen nets.Listen,
	logger logs.Logger,
	newSpan logs.NewSpan,
) ServeTCP {
	return func(ctx context.Context, addr string) error {
		ln, err := listen(ctx, addr)
		if err != nil {
			return err
		}
		return serveListener(ctx, ln, logger, newSpan)
	}
}

func serveListener(ctx context.Context, ln net.Listener, logger logs.Logger, newSpan logs.NewSpan) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// unblock Accept and every connection read
	var conns sync.Map
	wg.Go(func() {
		<-ctx.Done()
		ln.Close()
		conns.Range(func(key, _ any) bool {
			key.(net.Conn).Close()
			return true
		})
	})

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		conns.Store(conn, true)
		if ctx.Err() != nil {
			// raced with shutdown
			conn.Close()
		}

		wg.Go(func() {
			defer func() {
				conns.Delete(conn)
				conn.Close()
			}()
			ctx, _ := newSpan(ctx, "")
			logger.DebugContext(ctx, "help connection", "remote", conn.RemoteAddr().String())
			if err := Serve(ctx, conn, conn); err != nil && ctx.Err() == nil {
				logger.WarnContext(ctx, "help connection", "error", err)
			}
		})
	}
}
