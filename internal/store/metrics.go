package store

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// The view store holds the page state behind each session: the last search
// term and its results. Metrics are labelled with the ProviderConfig Group.
var (
	// ViewsRestored counts session views found on lookup.
	ViewsRestored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_store_restored_total",
			Help: "Session views restored from the view store.",
		},
		[]string{"group"},
	)

	// ViewsMissing counts lookups for sessions with no saved view, either
	// new sessions or views that expired.
	ViewsMissing = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_store_missing_total",
			Help: "Session lookups that found no saved view.",
		},
		[]string{"group"},
	)

	// ViewsEvicted counts views dropped by the backend before their session ended.
	ViewsEvicted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_store_evicted_total",
			Help: "Session views evicted from the view store.",
		},
		[]string{"group"},
	)

	// SavedViewBytes observes the encoded size of every saved view.
	SavedViewBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "view_store_saved_bytes",
			Help:    "Encoded size of session views written to the view store.",
			Buckets: prometheus.ExponentialBuckets(256, 4, 6),
		},
		[]string{"group"},
	)
)

func init() {
	prometheus.MustRegister(ViewsRestored, ViewsMissing, ViewsEvicted, SavedViewBytes)
}

var (
	liveViewsMu sync.Mutex
	liveViews   = make(map[string]prometheus.Collector)
	// liveViewsReg is swapped for an isolated registry in tests.
	liveViewsReg prometheus.Registerer = prometheus.DefaultRegisterer
)

// trackLiveViews exposes view_store_entries for group, read from count at
// scrape time so backend-side expiry is reflected. A gauge left by an earlier
// store of the same group is replaced.
func trackLiveViews(group string, count func() int) {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "view_store_entries",
		Help:        "Session views currently held by the view store.",
		ConstLabels: prometheus.Labels{"group": group},
	}, func() float64 { return float64(count()) })

	liveViewsMu.Lock()
	defer liveViewsMu.Unlock()
	if old, ok := liveViews[group]; ok {
		liveViewsReg.Unregister(old)
	}
	liveViews[group] = g
	_ = liveViewsReg.Register(g)
}

func untrackLiveViews(group string) {
	liveViewsMu.Lock()
	defer liveViewsMu.Unlock()
	if g, ok := liveViews[group]; ok {
		liveViewsReg.Unregister(g)
		delete(liveViews, group)
	}
}
