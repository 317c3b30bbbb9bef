// Package connectivity watches whether the messaging service is reachable
// so the page can be reloaded after the network comes back.
package connectivity

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/yllada/messages-desktop/common"
)

// State represents the reachability of the messaging service.
type State int

const (
	StateUnknown State = iota
	StateOnline
	StateOffline
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateOnline:
		return "Online"
	case StateOffline:
		return "Offline"
	default:
		return "Unknown"
	}
}

// Config holds configuration for the monitor.
type Config struct {
	// CheckInterval is how often reachability is probed.
	CheckInterval time.Duration
	// FailureThreshold is how many consecutive failures mark the service offline.
	FailureThreshold int
	// Hosts are dialed in order until one answers.
	Hosts []string
	// Timeout bounds each dial.
	Timeout time.Duration
}

// DefaultConfig returns the defaults used by the application.
func DefaultConfig() Config {
	return Config{
		CheckInterval:    common.ConnectivityInterval,
		FailureThreshold: 2,
		Hosts: []string{
			net.JoinHostPort(common.AppHost, "443"),
		},
		Timeout: common.ConnectivityTimeout,
	}
}

// normalize replaces unusable values with defaults.
func (c Config) normalize() Config {
	if c.CheckInterval <= 0 {
		c.CheckInterval = common.ConnectivityInterval
	}
	if c.FailureThreshold < 1 {
		c.FailureThreshold = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = common.ConnectivityTimeout
	}
	if len(c.Hosts) == 0 {
		c.Hosts = DefaultConfig().Hosts
	}
	return c
}

// ProbeFunc dials host and reports whether it answered.
type ProbeFunc func(ctx context.Context, host string) error

// DialProbe opens and closes a TCP connection to host.
func DialProbe(ctx context.Context, host string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", host)
	if err != nil {
		return err
	}
	return conn.Close()
}

// Monitor periodically probes the messaging service.
type Monitor struct {
	mu       sync.RWMutex
	config   Config
	probe    ProbeFunc
	running  bool
	stopChan chan struct{}
	done     chan struct{}

	state            State
	consecutiveFails int
	lastCheck        time.Time
	latency          time.Duration

	onChange func(oldState, newState State)
}

// NewMonitor creates a monitor. A nil probe dials over TCP.
func NewMonitor(config Config, probe ProbeFunc) *Monitor {
	if probe == nil {
		probe = DialProbe
	}
	return &Monitor{
		config: config.normalize(),
		probe:  probe,
	}
}

// SetOnChange sets a callback for state changes. It runs on the monitor's
// goroutine.
func (m *Monitor) SetOnChange(callback func(oldState, newState State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = callback
}

// Start begins the probing loop.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.stopChan = make(chan struct{})
	m.done = make(chan struct{})
	stop, done := m.stopChan, m.done
	interval := m.config.CheckInterval
	m.mu.Unlock()

	common.LogInfo("Connectivity monitor started (interval: %v)", interval)

	go m.runLoop(interval, stop, done)
}

// Stop ends the probing loop and waits for an in-flight probe to finish.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	close(m.stopChan)
	done := m.done
	m.mu.Unlock()

	<-done
	common.LogInfo("Connectivity monitor stopped")
}

// IsRunning returns whether the monitor is probing.
func (m *Monitor) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// State returns the last known state.
func (m *Monitor) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Latency returns the duration of the last successful probe.
func (m *Monitor) Latency() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latency
}

func (m *Monitor) runLoop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-stop
		cancel()
	}()

	m.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check probes once and updates the state. It returns the new state.
func (m *Monitor) Check(ctx context.Context) State {
	m.mu.RLock()
	config := m.config
	m.mu.RUnlock()

	latency, err := reach(ctx, config, m.probe)
	if ctx.Err() != nil {
		return m.State()
	}

	m.mu.Lock()
	m.lastCheck = time.Now()
	oldState := m.state

	if err != nil {
		m.consecutiveFails++
		m.latency = 0
		common.LogDebug("Connectivity check failed (%d/%d): %v",
			m.consecutiveFails, config.FailureThreshold, err)
		if m.consecutiveFails >= config.FailureThreshold {
			m.state = StateOffline
		}
	} else {
		m.consecutiveFails = 0
		m.latency = latency
		m.state = StateOnline
	}

	newState := m.state
	callback := m.onChange
	m.mu.Unlock()

	if oldState != newState {
		common.LogInfo("Connectivity changed: %s -> %s", oldState, newState)
		if callback != nil {
			callback(oldState, newState)
		}
	}
	return newState
}

// reach tries each host until one answers.
func reach(ctx context.Context, config Config, probe ProbeFunc) (time.Duration, error) {
	for _, host := range config.Hosts {
		probeCtx, cancel := context.WithTimeout(ctx, config.Timeout)
		start := time.Now()
		err := probe(probeCtx, host)
		cancel()
		if err == nil {
			return time.Since(start), nil
		}
	}
	return 0, common.ErrUnreachable
}

// UpdateConfig replaces the configuration. The interval takes effect on
// the next Start.
func (m *Monitor) UpdateConfig(config Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config.normalize()
}

// ReconnectReloader returns a change callback that calls reload when the
// service becomes reachable again after being offline.
func ReconnectReloader(reload func()) func(oldState, newState State) {
	return func(oldState, newState State) {
		if oldState == StateOffline && newState == StateOnline {
			reload()
		}
	}
}
