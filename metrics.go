package spellcore

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type checkerMetrics struct {
	checkedTexts prometheus.Counter
	checkedWords prometheus.Counter
	misspellings prometheus.Counter
	suggestions  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*checkerMetrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := checkerMetrics{
		checkedTexts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spellcore_checked_texts_total",
			Help: "Number of texts that have been spellchecked.",
		}),
		checkedWords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spellcore_checked_words_total",
			Help: "Number of words that have been looked up during checks.",
		}),
		misspellings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spellcore_misspellings_total",
			Help: "Number of misspelled words found during checks.",
		}),
		suggestions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spellcore_suggestion_queries_total",
			Help: "Number of suggestion lookups that have been made.",
		}),
	}

	collectors := []prometheus.Collector{
		m.checkedTexts,
		m.checkedWords,
		m.misspellings,
		m.suggestions,
	}

	for _, c := range collectors {
		err := reg.Register(c)
		if err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return &m, nil
}
