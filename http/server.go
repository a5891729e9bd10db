package http

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"
)

const keepAliveIdleTimeout = 5 * time.Second

// Server drives connections through the route table. The table must be
// fully registered before the first Serve call; from then on it is shared
// read-only between all connection goroutines.
type Server struct {
	Name   string
	Router Router

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(name string) *Server {
	return &Server{
		Name:   name,
		Router: NewRouter(),
	}
}

// ListenAndServe serves on addr until ctx is cancelled or the listener
// fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	return s.Serve(listener)
}

func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Error("accept failed", "server", s.Name, "error", err)
			continue
		}

		go s.ServeConn(conn)
	}
}

// ServeConn handles one connection: parse, route, handle, write, repeat
// while keep-alive holds. Malformed input gets a 400 and the connection is
// closed; handler errors never escape past the response.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	br := bufio.NewReaderSize(conn, DefaultReadBufferSize)
	bw := bufio.NewWriterSize(conn, DefaultWriteBufferSize)

	var req Request
	var res Response

	for {
		req.Reset()
		res.Reset()

		if err := req.Parse(br); err != nil {
			if errors.Is(err, ErrMalformedRequest) {
				res.WithStatus(StatusBadRequest)
				res.Headers.Set("Connection", "close")
				res.Write(bw)
			} else if err != io.EOF {
				slog.Debug("request read failed", "server", s.Name, "error", err)
			}
			return
		}

		handler, params := s.Router.Lookup(req.Method, req.Path)
		req.Params = params
		handler(&req, &res)

		keepAlive := req.KeepAlive()
		if keepAlive {
			res.Headers.Set("Connection", "keep-alive")
		} else {
			res.Headers.Set("Connection", "close")
		}

		if err := res.Write(bw); err != nil {
			return
		}

		if !keepAlive {
			return
		}

		conn.SetDeadline(time.Now().Add(keepAliveIdleTimeout))
	}
}

// Shutdown stops accepting connections. Connections already being served
// finish their current request.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
