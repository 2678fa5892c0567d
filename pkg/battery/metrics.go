package battery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recordOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "batteryhub_record_operations_total",
		Help: "Record service operations by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

func observeRecordOp(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	recordOpsTotal.WithLabelValues(operation, outcome).Inc()
}
