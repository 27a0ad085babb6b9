package metrics

import (
	"errors"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGenerateSuccess(t *testing.T) {
	GenerateTotal.Reset()
	RecordGenerate(nil)
	assert.Equal(t, 1, int(promtestutil.ToFloat64(GenerateTotal.WithLabelValues(StatusSuccess))))
}

func TestRecordGenerateError(t *testing.T) {
	GenerateTotal.Reset()
	RecordGenerate(errors.New("boom"))
	assert.Equal(t, 1, int(promtestutil.ToFloat64(GenerateTotal.WithLabelValues(StatusError))))
}

func TestRecordCombine(t *testing.T) {
	CombineTotal.Reset()
	RecordCombine(nil)
	RecordCombine(errors.New("boom"))
	assert.Equal(t, 1, int(promtestutil.ToFloat64(CombineTotal.WithLabelValues(StatusSuccess))))
	assert.Equal(t, 1, int(promtestutil.ToFloat64(CombineTotal.WithLabelValues(StatusError))))
}

func TestOperationDurationObserves(t *testing.T) {
	OperationDuration.Reset()
	OperationDuration.WithLabelValues(OpGenerate).Observe(0.01)
	assert.Equal(t, 1, promtestutil.CollectAndCount(OperationDuration))
}
