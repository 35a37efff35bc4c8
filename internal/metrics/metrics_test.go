package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(OutcomeFailed))

	RecordLogin(OutcomeFailed)
	RecordLogin(OutcomeFailed)

	after := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(OutcomeFailed))
	assert.Equal(t, before+2, after)
}

func TestRecordLogin_None(t *testing.T) {
	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(OutcomeNone))
	failed := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(OutcomeFailed))

	RecordLogin(OutcomeNone)

	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(OutcomeNone)))
	assert.Equal(t, failed, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(OutcomeFailed)))
}
