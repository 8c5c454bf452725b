package metric

import "github.com/prometheus/client_golang/prometheus"

// KeyCounter reports how many keys are currently stored.
type KeyCounter interface {
	Len() int
}

// StoreCollector exports the key count of a store at scrape time.
type StoreCollector struct {
	store KeyCounter
	keys  *prometheus.Desc
}

// NewStoreCollector creates a collector for store.
func NewStoreCollector(store KeyCounter) *StoreCollector {
	return &StoreCollector{
		store: store,
		keys: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "store", "keys"),
			"Number of keys held in memory",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(c.store.Len()))
}
