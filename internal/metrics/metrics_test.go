package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAnalysesCounter(t *testing.T) {
	before := testutil.ToFloat64(Analyses.WithLabelValues(OutcomeRejected))
	Analyses.WithLabelValues(OutcomeRejected).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Analyses.WithLabelValues(OutcomeRejected)))
}

func TestReadinessScoreHistogram(t *testing.T) {
	ReadinessScore.Observe(65)
	assert.Equal(t, 1, testutil.CollectAndCount(ReadinessScore, "placement_readiness_score"))
}
