package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGauges(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetActiveUsers(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.ActiveUsers))

	m.SetSystemMemoryTotal(2048)
	m.SetSystemMemoryTotal(0)
	assert.Equal(t, 2048.0, testutil.ToFloat64(m.SystemMemoryTotal))
}

func TestHandlerExposesNames(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SuccessfulUserAdds.Inc()
	m.FailedUserClears.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	for _, name := range []string{
		"successful_user_adds 1",
		"failed_user_adds 0",
		"successful_user_deletes 0",
		"failed_user_deletes 0",
		"successful_user_clears 0",
		"failed_user_clears 1",
		"num_active_users 0",
		"system_memory_total_bytes 0",
	} {
		assert.True(t, strings.Contains(string(body), name), "missing %q", name)
	}
}

func TestInstrument(t *testing.T) {
	m := New(prometheus.NewRegistry())
	h := m.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("418", "get")))
}
