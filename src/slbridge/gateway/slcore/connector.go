package slcore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/internal/notify"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeySLCore          = "slcore"
	_defaultDialTimeout       = 10 * time.Second
	_defaultReconnectInterval = 5 * time.Second
)

// Connector keeps a JSON-RPC connection to the backend open, reconnecting when it drops.
type Connector interface {
	// SetHandler installs the handler for requests sent by the backend. Only one may be set.
	SetHandler(handler jsonrpc2.Handler) error
	// SubscribeConnected registers fn to run on every new backend connection.
	SubscribeConnected(fn func(conn jsonrpc2.Conn)) (unsubscribe func())
	// SubscribeDisconnected registers fn to run after a backend connection ended.
	SubscribeDisconnected(fn func()) (unsubscribe func())
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
}

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

type connectorConfig struct {
	Address                  string `yaml:"address"`
	DialTimeoutSeconds       int    `yaml:"dialTimeoutSeconds"`
	ReconnectIntervalSeconds int    `yaml:"reconnectIntervalSeconds"`
}

type connector struct {
	address           string
	dialTimeout       time.Duration
	reconnectInterval time.Duration
	dial              dialFunc
	logger            *zap.SugaredLogger
	stats             tally.Scope

	mu      sync.Mutex
	handler jsonrpc2.Handler
	cancel  context.CancelFunc
	stopped chan struct{}

	connected    notify.Listeners[jsonrpc2.Conn]
	disconnected notify.Listeners[struct{}]
}

// ConnectorParams define values to be used by the Connector.
type ConnectorParams struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

// NewConnector creates a Connector that starts dialing the configured backend address when the app starts.
func NewConnector(p ConnectorParams) (Connector, error) {
	var cfg connectorConfig
	if err := p.Config.Get(_configKeySLCore).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySLCore, err)
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeySLCore+".address")
	}

	c := &connector{
		address:           cfg.Address,
		dialTimeout:       secondsOrDefault(cfg.DialTimeoutSeconds, _defaultDialTimeout),
		reconnectInterval: secondsOrDefault(cfg.ReconnectIntervalSeconds, _defaultReconnectInterval),
		dial:              (&net.Dialer{}).DialContext,
		logger:            p.Logger.With("component", "slcore-connector"),
		stats:             p.Stats.SubScope("slcore"),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: c.OnStart,
		OnStop:  c.OnStop,
	})
	return c, nil
}

func (c *connector) SetHandler(handler jsonrpc2.Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handler != nil {
		return errors.New("cannot register a duplicate backend handler")
	}
	c.handler = handler
	return nil
}

func (c *connector) SubscribeConnected(fn func(conn jsonrpc2.Conn)) func() {
	return c.connected.Subscribe(fn)
}

func (c *connector) SubscribeDisconnected(fn func()) func() {
	return c.disconnected.Subscribe(func(struct{}) { fn() })
}

// OnStart begins the connection loop in the background.
func (c *connector) OnStart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return errors.New("connector already started")
	}
	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.stopped = make(chan struct{})
	go c.run(runCtx, c.stopped)
	return nil
}

// OnStop closes the current connection and waits for the connection loop to exit.
func (c *connector) OnStop(ctx context.Context) error {
	c.mu.Lock()
	cancel, stopped := c.cancel, c.stopped
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *connector) run(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	for {
		if err := c.connectOnce(ctx); err != nil && ctx.Err() == nil {
			c.logger.Warnf("backend connection to %s failed: %v", c.address, err)
		}

		timer := time.NewTimer(c.reconnectInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (c *connector) connectOnce(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	netConn, err := c.dial(dialCtx, "tcp", c.address)
	cancel()
	if err != nil {
		c.stats.Counter("connect_failures").Inc(1)
		return fmt.Errorf("dialing backend: %w", err)
	}

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(netConn))
	conn.Go(ctx, c.handle)

	c.stats.Counter("connects").Inc(1)
	c.logger.Infof("connected to backend at %s", c.address)
	c.connected.Notify(conn)

	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	}

	c.logger.Infof("disconnected from backend at %s", c.address)
	c.disconnected.Notify(struct{}{})
	return conn.Err()
}

func (c *connector) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()

	if handler == nil {
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
	return handler(ctx, reply, req)
}

func secondsOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
