package privacy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var tokensMinted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trackveil_tokens_minted_total",
	Help: "New token mappings created, by category.",
}, []string{"category"})
