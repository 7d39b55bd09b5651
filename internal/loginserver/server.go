// Package loginserver implements the login-port connection handling:
// accept loop, per-connection request/response loop and the BeforeLogin /
// Authenticated state machine (spec.md §4.4). Grounded on the teacher's
// internal/login package (server.go's acceptLoop/handleConnection shape),
// generalized to a plaintext, need-more-bytes framing discipline instead
// of the teacher's Blowfish-wrapped fixed-header packets.
package loginserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/sadroeck/heimdall-go/internal/bufpool"
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/loginserver/clientpackets"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

// Server is the login-port TCP listener.
type Server struct {
	bindAddr string
	handler  *Handler

	sendPool *bufpool.Pool

	mu       sync.Mutex
	listener net.Listener
}

// NewServer builds a login server bound to addr (host:port), dispatching
// decoded requests to handler.
func NewServer(bindAddr string, handler *Handler) *Server {
	return &Server{
		bindAddr: bindAddr,
		handler:  handler,
		sendPool: bufpool.New(constants.DefaultSendBufSize),
	}
}

// Addr returns the listener's address, or nil if Run/Serve hasn't started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close closes the listener, unblocking Run/Serve's accept loop.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Run listens on s.bindAddr and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.bindAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.bindAddr, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	return s.Serve(ctx, ln)
}

// Serve accepts connections on a caller-supplied listener (used directly
// by tests that bind an ephemeral port).
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	var wg sync.WaitGroup
	slog.Info("login server started", "address", ln.Addr())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			slog.Error("failed to accept connection", "error", err)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConnection(ctx, conn)
		}()
	}
	wg.Wait()
	return nil
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		host = conn.RemoteAddr().String()
	}
	slog.Info("login connection accepted", "remote", host)

	sess := newSession(host)
	readBuf := make([]byte, 0, constants.DefaultReadBufSize)
	tmp := make([]byte, constants.DefaultReadBufSize)

	for {
		n, err := conn.Read(tmp)
		if n > 0 {
			readBuf = append(readBuf, tmp[:n]...)
		}
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Debug("login connection closed", "remote", host, "error", err)
			}
			return
		}

		for {
			consumed, req, decErr := clientpackets.Decode(readBuf)
			if decErr != nil {
				if errors.Is(decErr, wire.ErrNeedMoreData) {
					break
				}
				slog.Warn("login decode error", "remote", host, "error", decErr)
				return
			}

			sendBuf := s.sendPool.Get(constants.DefaultSendBufSize)
			respLen, keepOpen, handleErr := s.handler.Handle(sess, req, sendBuf)
			if handleErr != nil {
				s.sendPool.Put(sendBuf)
				slog.Warn("login handle error", "remote", host, "error", handleErr)
				return
			}
			if respLen > 0 {
				if _, writeErr := conn.Write(sendBuf[:respLen]); writeErr != nil {
					s.sendPool.Put(sendBuf)
					slog.Warn("login write error", "remote", host, "error", writeErr)
					return
				}
			}
			s.sendPool.Put(sendBuf)

			readBuf = readBuf[consumed:]
			if !keepOpen {
				return
			}
		}
	}
}
