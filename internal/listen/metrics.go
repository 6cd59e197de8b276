package listen

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	// PacketsReceived counts every UDP datagram read on the wake port.
	PacketsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lanwake_udp_packets_total",
			Help: "Number of UDP datagrams received on the wake port",
		},
	)

	// MagicPackets counts datagrams that parsed as valid magic packets.
	MagicPackets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lanwake_magic_packets_total",
			Help: "Number of valid Wake-on-LAN magic packets received",
		},
	)

	// InvalidPackets counts datagrams that were not magic packets.
	InvalidPackets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lanwake_invalid_packets_total",
			Help: "Number of datagrams that failed magic packet validation",
		},
	)

	// ReadErrors counts socket read failures.
	ReadErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lanwake_read_errors_total",
			Help: "Number of errors reading from the wake port",
		},
	)
)

// Registry holds the listener metrics, separate from the default
// registry so tests and embedders control exposition.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		PacketsReceived,
		MagicPackets,
		InvalidPackets,
		ReadErrors,
	)
}

// ServeMetrics exposes the registry over HTTP on addr until ctx is
// cancelled.
func ServeMetrics(ctx context.Context, addr string, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
