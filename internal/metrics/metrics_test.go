package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartServer_Disabled(t *testing.T) {
	for _, addr := range []string{"", "  ", "off", "Disabled", "false"} {
		t.Run(addr, func(t *testing.T) {
			srv, errCh := StartServer(context.Background(), addr)
			assert.Nil(t, srv)
			assert.Nil(t, errCh)
		})
	}
}

func TestHandler_ServesCheckMetrics(t *testing.T) {
	ChecksTotal.WithLabelValues("handler-test", "up").Inc()

	ts := httptest.NewServer(Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `upmon_checks_total{monitor="handler-test",status="up"}`)
}
