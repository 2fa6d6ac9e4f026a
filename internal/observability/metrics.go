package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	IngestConnections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lora_ingest_connections_total",
		Help: "TCP bridge connections accepted",
	})
	WebhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lora_webhook_requests_total",
		Help: "Uplink webhook requests by platform",
	}, []string{"platform"})
	UplinksRecv = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lora_uplinks_received_total",
		Help: "Uplink frames received across all ingest surfaces",
	})
	RecordsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lora_records_decoded_total",
		Help: "Payloads decoded into records, by layout",
	}, []string{"layout"})
	DecodeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lora_decode_errors_total",
		Help: "Uplinks dropped because no layout is mapped to their port",
	})
	NullFields = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lora_null_fields_total",
		Help: "Float fields decoded to null (NaN/Inf bit patterns)",
	})
	RedisSetErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lora_redis_set_errors_total",
		Help: "Errors writing reading state to Redis",
	})
	DecodeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lora_decode_latency_seconds",
		Help:    "End-to-end latency of uplink processing",
		Buckets: prometheus.DefBuckets,
	})
)

func ObserveDecodeLatency(start time.Time) {
	DecodeLatency.Observe(time.Since(start).Seconds())
}

func StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	_ = http.ListenAndServe(":"+port, nil)
}
