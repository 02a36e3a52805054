package checkpoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "ws", in: "ws://localhost:8080/api/v1/ws", want: "http://localhost:8080/api/v1/checkpoints"},
		{name: "wss with slash", in: "wss://safewalk.example/api/v1/ws/", want: "https://safewalk.example/api/v1/checkpoints"},
		{name: "http base", in: "http://localhost:8080/api/v1", want: "http://localhost:8080/api/v1/checkpoints"},
		{name: "bad scheme", in: "ftp://localhost/api/v1/ws", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemoteURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetch_ServerSetReplacesLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/checkpoints", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Gate","latitude":55.7558,"longitude":37.6173},{"name":"Store","latitude":37.7749,"longitude":-122.4194}]`))
	}))
	defer srv.Close()

	r, err := Fetch(context.Background(), srv.Client(), srv.URL+"/api/v1/checkpoints")

	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "Gate", r.All()[0].Name)
	assert.Equal(t, "Store", r.All()[1].Name)
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "not json", status: http.StatusOK, body: `checkpoints`},
		{name: "empty list", status: http.StatusOK, body: `[]`},
		{name: "invalid latitude", status: http.StatusOK, body: `[{"name":"X","latitude":123,"longitude":0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := Fetch(context.Background(), srv.Client(), srv.URL)
			assert.Error(t, err)
		})
	}
}
