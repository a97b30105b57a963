// Package transport builds the outbound HTTP client used for OMDb calls.
package transport

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"
)

var errNoAddrs = errors.New("no addresses")

// New returns a tuned *http.Transport with connection pooling and
// optional DNS caching through resolver.
func New(resolver *dnscache.Resolver) *http.Transport {
	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 16,
		MaxConnsPerHost:     32,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if resolver != nil {
		t.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ips, err := resolver.LookupHost(ctx, host)
			if err != nil {
				return nil, err
			}
			if len(ips) == 0 {
				return nil, &net.DNSError{Err: errNoAddrs.Error(), Name: host}
			}
			var d net.Dialer
			return d.DialContext(ctx, network, net.JoinHostPort(ips[0], port))
		}
	}
	return t
}

// NewClient wraps New in an *http.Client with the given overall timeout.
func NewClient(resolver *dnscache.Resolver, timeout time.Duration) *http.Client {
	return &http.Client{Transport: New(resolver), Timeout: timeout}
}

// RefreshLoop refreshes resolver entries every interval until ctx is done.
// Entries not used since the previous refresh are dropped.
func RefreshLoop(ctx context.Context, resolver *dnscache.Resolver, interval time.Duration, log *slog.Logger) error {
	if resolver == nil || interval <= 0 {
		<-ctx.Done()
		return nil
	}
	if log == nil {
		log = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			resolver.Refresh(true)
			log.Debug("dns cache refreshed")
		}
	}
}
