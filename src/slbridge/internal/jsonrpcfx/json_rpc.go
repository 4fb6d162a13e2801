// Package jsonrpcfx accepts IDE connections and routes their JSON-RPC traffic.
package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/internal/serverinfofile"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyAddress = "jsonrpc.address"
	_outputKey        = "ide-address"
)

// Module is an fx module to handle JSON-RPC requests from the IDE.
var Module = fx.Provide(New)

// JSONRPCModule accepts IDE connections and hands each of them to the registered ConnectionManager.
type JSONRPCModule interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	ServeStream(ctx context.Context, conn jsonrpc2.Conn) error
	RegisterConnectionManager(connectionManager ConnectionManager) error
}

// Router handles the requests of a single connection.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager creates a Router for each new connection and is told when the connection goes away.
type ConnectionManager interface {
	NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

type module struct {
	address string

	mu             sync.Mutex
	connectionMgr  ConnectionManager
	ln             net.Listener
	logger         *zap.SugaredLogger
	serverInfoFile serverinfofile.ServerInfoFile
	activeConns    tally.Gauge
	connected      int
}

// Params define values to be used by the JSON-RPC module.
type Params struct {
	fx.In

	Config         config.Provider
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
	Stats          tally.Scope `optional:"true"`
}

// New creates a module that will listen for IDE connections on the configured address once started.
func New(p Params) (JSONRPCModule, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	stats := p.Stats
	if stats == nil {
		stats = tally.NoopScope
	}

	m := &module{
		logger:         p.Logger,
		serverInfoFile: p.ServerInfoFile,
		activeConns:    stats.SubScope("jsonrpc").Gauge("active_connections"),
	}
	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.OnStop,
	})
	return m, nil
}

// OnStart binds the listener and begins accepting connections in the background.
func (m *module) OnStart(ctx context.Context) error {
	ln, err := m.listen()
	if err != nil {
		return err
	}

	if m.serverInfoFile != nil {
		if err := m.serverInfoFile.UpdateField(_outputKey, ln.Addr().String()); err != nil {
			ln.Close()
			return err
		}
	}

	go m.serve(ln)
	return nil
}

// OnStop closes the listener. Connections already accepted end when the IDE hangs up.
func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	ln := m.ln
	m.ln = nil
	m.mu.Unlock()

	if ln == nil {
		return nil
	}
	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// ServeStream routes the requests of a new connection and blocks until it is closed.
func (m *module) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	m.mu.Lock()
	mgr := m.connectionMgr
	m.mu.Unlock()

	if mgr == nil {
		m.logger.Errorf("cannot serve connection, no connection manager set")
		return errors.New("cannot serve connection, no connection manager set")
	}

	router, err := mgr.NewConnection(ctx, &conn)
	if err != nil {
		return err
	}
	m.trackConnection(1)
	m.logger.Infof("ide connected: %s", router.UUID())
	conn.Go(ctx, router.HandleReq)

	<-conn.Done()

	mgr.RemoveConnection(ctx, router.UUID())
	m.trackConnection(-1)
	m.logger.Infof("ide disconnected: %s", router.UUID())

	return conn.Err()
}

// RegisterConnectionManager sets the connection manager. Only one may be registered.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connectionMgr != nil {
		return errors.New("cannot register a duplicate connection manager")
	}
	m.connectionMgr = connectionMgr
	return nil
}

func (m *module) listen() (net.Listener, error) {
	if m.address == "" {
		return nil, errors.New("listen called before address is set")
	}

	addr, err := net.ResolveTCPAddr("tcp", m.address)
	if err != nil {
		return nil, err
	}
	ln, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.ln = ln
	m.mu.Unlock()
	return ln, nil
}

func (m *module) serve(ln net.Listener) {
	m.logger.Infof("started JSON-RPC inbound on %s", ln.Addr())
	if err := jsonrpc2.Serve(context.Background(), ln, m, 0); err != nil && !errors.Is(err, net.ErrClosed) {
		m.logger.Errorf("JSON-RPC inbound stopped: %v", err)
	}
}

func (m *module) trackConnection(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected += delta
	m.activeConns.Update(float64(m.connected))
}

func (m *module) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyAddress).Populate(&m.address); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyAddress, err)
	}
	if m.address == "" {
		return fmt.Errorf("missing field %q in config", _configKeyAddress)
	}
	return nil
}
