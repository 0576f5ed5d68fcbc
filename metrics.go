package kvbench

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricReadOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kvbench_read_ops_total",
		Help: "Total successful point reads issued by the timed phase",
	})
	metricWriteOps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kvbench_write_ops_total",
		Help: "Total successful transactional writes issued by the timed phase",
	})
	metricErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kvbench_errors_total",
		Help: "Total failed store operations during the timed phase",
	})
)

func init() {
	prometheus.MustRegister(metricReadOps, metricWriteOps, metricErrors)
}

// ServeMetrics exposes /metrics on addr for scraping during long runs.
// No-op when addr is empty. The server lives for the rest of the process;
// the harness exits shortly after the run ends anyway.
func ServeMetrics(addr string) {
	if len(addr) == 0 {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			Warnf("metrics endpoint on %s failed: %s", addr, err)
		}
	}()
	Infof("serving metrics on %s/metrics", addr)
}
