package testutil

import (
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// StubServer answers every request with a fixed status and body.
type StubServer struct {
	*httptest.Server

	hits atomic.Int64
}

func NewStubServer(t *testing.T, status int, body []byte) *StubServer {
	t.Helper()

	stub := &StubServer{} //nolint:exhaustruct
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		stub.hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(stub.Close)

	return stub
}

func (s *StubServer) Hits() int64 {
	return s.hits.Load()
}

// ClosedServerURL returns a URL on a local port that has no listener. The
// port is released before returning, so callers must not run in parallel
// with tests that start servers.
func ClosedServerURL(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "Failed to reserve a local port")

	addr := listener.Addr().String()
	require.NoError(t, listener.Close(), "Failed to release reserved port")

	return "http://" + addr + "/api/settings"
}
