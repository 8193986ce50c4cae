package projector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	savesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trackveil_entity_saves_total",
		Help: "Entity saves that committed to both partitions, by kind.",
	}, []string{"kind"})

	desyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trackveil_projection_desync_total",
		Help: "Saves rolled back because the public projection failed, by kind.",
	}, []string{"kind"})
)
