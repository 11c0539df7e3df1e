package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbooking/sportbook-web/internal/ports"
)

func TestNewGeocoder_RequiresUserAgent(t *testing.T) {
	_, err := NewGeocoder(Options{})
	require.Error(t, err)
}

func TestGeocoder_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Cầu Giấy, Hà Nội", q.Get("q"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("addressdetails"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "1", q.Get("bounded"))
		assert.Equal(t, "105.5,21.3,106.1,20.7", q.Get("viewbox"))
		assert.Equal(t, "vi", q.Get("accept-language"))
		assert.Equal(t, "sportbook-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[
			{"lat":"21.0362","lon":"105.7906","display_name":"Cầu Giấy, Hà Nội","address":{"city":"Hà Nội"}},
			{"lat":"bad","lon":"105.1","display_name":"broken"}
		]`))
	}))
	defer srv.Close()

	g, err := NewGeocoder(Options{BaseURL: srv.URL, UserAgent: "sportbook-test", RateLimit: 100})
	require.NoError(t, err)

	got, err := g.Search(context.Background(), ports.GeocodeQuery{
		Text: "Cầu Giấy, Hà Nội", ViewBox: "105.5,21.3,106.1,20.7", Language: "vi", Limit: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, []ports.GeocodeResult{
		{Lat: 21.0362, Lng: 105.7906, DisplayName: "Cầu Giấy, Hà Nội", City: "Hà Nội"},
	}, got)
}

func TestGeocoder_Search_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	g, err := NewGeocoder(Options{BaseURL: srv.URL, UserAgent: "sportbook-test", RateLimit: 100})
	require.NoError(t, err)

	_, err = g.Search(context.Background(), ports.GeocodeQuery{Text: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}
