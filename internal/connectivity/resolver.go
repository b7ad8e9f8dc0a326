// Package connectivity decides which server requests go to. The [Resolver]
// owns the current base URL and switches between the live server and the
// local fallback server as connectivity changes.
package connectivity

import (
	"context"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
)

// Target is the server requests are routed to.
type Target string

const (
	TargetLive  Target = "live"
	TargetLocal Target = "local"
)

// localHealthPath is probed on the local fallback server.
const localHealthPath = "/health"

// State is a snapshot of the resolver decision.
type State struct {
	Target Target
	Base   string
	Online bool
}

// Prober checks reachability of an absolute URL. Any 2xx answer counts as
// reachable. The server adapter implements it.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// DialFunc opens a network connection; it matches [net.Dialer.DialContext].
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Resolver is a two-state machine choosing between the live and the local
// server. It is safe for concurrent use; resolution may be triggered by the
// periodic worker and by connectivity events at the same time.
type Resolver struct {
	mu         sync.RWMutex
	state      State
	online     bool
	forceLocal bool

	host          HostCapability
	liveBase      string
	localBase     string
	liveProbePath string
	probeTimeout  time.Duration
	interval      time.Duration

	prober Prober
	dial   DialFunc

	listenersMu sync.Mutex
	listeners   []func(prev, next State)

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewResolver creates a resolver in its initial state: LOCAL when forced or
// on a packaged host, LIVE otherwise. The environment is assumed online until
// the first check says otherwise.
func NewResolver(
	adapterCfg config.Adapter,
	connCfg config.Connectivity,
	host HostCapability,
	prober Prober,
	m *metrics.Metrics,
	log *logger.Logger,
) *Resolver {
	d := &net.Dialer{}
	r := &Resolver{
		online:        true,
		forceLocal:    connCfg.ForceLocal,
		host:          host,
		liveBase:      strings.TrimRight(adapterCfg.LiveAddress, "/"),
		localBase:     strings.TrimRight(adapterCfg.LocalAddress, "/"),
		liveProbePath: adapterCfg.LiveProbePath,
		probeTimeout:  adapterCfg.ProbeTimeout,
		interval:      connCfg.ResolveInterval,
		prober:        prober,
		dial:          d.DialContext,
		metrics:       m,
		logger:        log,
	}

	target := TargetLive
	if r.forceLocal || host == HostPackagedOffline || r.liveBase == "" {
		target = TargetLocal
	}
	r.state = State{Target: target, Base: r.baseFor(target), Online: true}
	m.SetTarget(string(target), string(TargetLive), string(TargetLocal))

	return r
}

// WithDialer replaces the dialer used for online checks.
func (r *Resolver) WithDialer(dial DialFunc) *Resolver {
	r.dial = dial
	return r
}

func (r *Resolver) baseFor(t Target) string {
	if t == TargetLocal {
		return r.localBase
	}
	return r.liveBase
}

// State returns the current decision.
func (r *Resolver) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Base returns the base URL requests should currently target.
func (r *Resolver) Base() string {
	return r.State().Base
}

// Target returns the current target.
func (r *Resolver) Target() Target {
	return r.State().Target
}

// LiveBase returns the live server base URL.
func (r *Resolver) LiveBase() string {
	return r.liveBase
}

// LocalBase returns the local fallback server base URL.
func (r *Resolver) LocalBase() string {
	return r.localBase
}

// Host returns the detected host capability.
func (r *Resolver) Host() HostCapability {
	return r.host
}

// LocalEligible reports whether a local fallback exists for this client.
func (r *Resolver) LocalEligible() bool {
	return r.localBase != ""
}

// OnChange registers fn to be called after every state change, a new target
// or a flip of the online signal. Listeners run
// synchronously on the goroutine that performed the resolution and must
// not call back into Resolve.
func (r *Resolver) OnChange(fn func(prev, next State)) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// SetOnline records a connectivity event and re-resolves.
func (r *Resolver) SetOnline(ctx context.Context, online bool) State {
	r.mu.Lock()
	r.online = online
	r.mu.Unlock()
	return r.Resolve(ctx)
}

// SetForceLocal pins the resolver to (or releases it from) the local server
// and re-resolves.
func (r *Resolver) SetForceLocal(ctx context.Context, force bool) State {
	r.mu.Lock()
	r.forceLocal = force
	r.mu.Unlock()
	return r.Resolve(ctx)
}

// Resolve recomputes the target from the current signals. Probes run
// without holding the lock; resolving to the state already held changes
// nothing and notifies nobody.
func (r *Resolver) Resolve(ctx context.Context) State {
	log := logger.FromContext(ctx)

	r.mu.RLock()
	online, force, current := r.online, r.forceLocal, r.state.Target
	r.mu.RUnlock()

	next := current
	switch {
	case force:
		next = TargetLocal

	case r.host == HostPackagedOffline:
		// the live server may not be meaningful here, so an unreachable
		// local server is left to the caller's fallback
		next = TargetLocal
		if !r.reachable(ctx, r.localBase, localHealthPath) {
			log.Warn().Str("func", "Resolver.Resolve").Str("base", r.localBase).Msg("local server unreachable")
		}

	case r.liveBase == "":
		next = TargetLocal

	case online && current == TargetLocal:
		if r.reachable(ctx, r.liveBase, r.liveProbePath) {
			next = TargetLive
		}

	case online:
		next = TargetLive

	default:
		if r.reachable(ctx, r.localBase, localHealthPath) {
			next = TargetLocal
		}
	}

	return r.set(ctx, next, online)
}

func (r *Resolver) set(ctx context.Context, target Target, online bool) State {
	r.mu.Lock()
	prev := r.state
	next := State{Target: target, Base: r.baseFor(target), Online: online}
	r.state = next
	r.mu.Unlock()

	if prev == next {
		return next
	}

	if prev.Target != next.Target {
		logger.FromContext(ctx).Info().
			Str("func", "Resolver.set").
			Str("from", string(prev.Target)).
			Str("to", string(next.Target)).
			Str("base", next.Base).
			Bool("online", online).
			Msg("request target changed")
		r.metrics.SetTarget(string(target), string(TargetLive), string(TargetLocal))
	}

	r.listenersMu.Lock()
	listeners := append([]func(prev, next State){}, r.listeners...)
	r.listenersMu.Unlock()
	for _, fn := range listeners {
		fn(prev, next)
	}
	return next
}

// reachable probes base+path within the probe timeout.
func (r *Resolver) reachable(ctx context.Context, base, path string) bool {
	if base == "" || r.prober == nil {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	if err := r.prober.Probe(probeCtx, base+path); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "Resolver.reachable").Str("url", base+path).Msg("probe failed")
		return false
	}
	return true
}

// ProbeLocal reports whether the local fallback server answers its health
// check right now.
func (r *Resolver) ProbeLocal(ctx context.Context) bool {
	return r.reachable(ctx, r.localBase, localHealthPath)
}

// CheckOnline dials the live server host. A dial that does not complete
// within the probe timeout counts as offline.
func (r *Resolver) CheckOnline(ctx context.Context) bool {
	addr := dialAddress(r.liveBase)
	if addr == "" || r.dial == nil {
		return false
	}

	dialCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	conn, err := r.dial(dialCtx, "tcp", addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func dialAddress(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port)
}

// Run re-resolves immediately and then every resolve interval until ctx is
// cancelled. Each tick refreshes the online signal first.
func (r *Resolver) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	interval := r.interval
	if interval <= 0 {
		interval = 3 * time.Second
	}

	r.SetOnline(ctx, r.CheckOnline(ctx))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Str("func", "Resolver.Run").Dur("interval", interval).Msg("resolver started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("func", "Resolver.Run").Msg("resolver stopped")
			return
		case <-ticker.C:
			r.SetOnline(ctx, r.CheckOnline(ctx))
		}
	}
}
