package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetList(t *testing.T) {
	list, err := ParseNetList("192.168.1.7, 10.0.0.0/8 172.16.0.0/255.240.0.0,2001:db8::/32")
	require.NoError(t, err)

	tests := []struct {
		ip     string
		banned bool
	}{
		{"192.168.1.7", true},
		{"192.168.1.8", false},
		{"10.20.30.40", true},
		{"172.31.255.1", true},
		{"172.32.0.1", false},
		{"2001:db8::1", true},
		{"::ffff:10.1.1.1", true},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.banned, list.Contains(tt.ip))
		})
	}
}

func TestParseNetList_Invalid(t *testing.T) {
	for _, in := range []string{"300.1.1.1", "10.0.0.0/33", "10.0.0.0/255.0.255.0", "::1/255.0.0.0"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseNetList(in)
			assert.Error(t, err)
		})
	}
}

func TestNetList_Empty(t *testing.T) {
	list, err := ParseNetList("  ")
	require.NoError(t, err)
	assert.True(t, list.Empty())
	assert.False(t, list.Contains("127.0.0.1"))

	var nilList *NetList
	assert.False(t, nilList.Contains("127.0.0.1"))
}

func TestIPBan(t *testing.T) {
	list, err := ParseNetList("203.0.113.0/24")
	require.NoError(t, err)

	e := echo.New()
	e.Use(IPBan(list))
	e.GET("/search", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	banned := httptest.NewRequest(http.MethodGet, "/search", nil)
	banned.RemoteAddr = "203.0.113.9:4711"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, banned)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	allowed := httptest.NewRequest(http.MethodGet, "/search", nil)
	allowed.RemoteAddr = "198.51.100.1:4711"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, allowed)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNetList_IPNets(t *testing.T) {
	list, err := ParseNetList("10.0.0.0/8 192.168.1.7 2001:db8::/32")
	require.NoError(t, err)

	nets := list.IPNets()

	require.Len(t, nets, 3)
	assert.Equal(t, "10.0.0.0/8", nets[0].String())
	assert.Equal(t, "192.168.1.7/32", nets[1].String())
	assert.Equal(t, "2001:db8::/32", nets[2].String())
}

func TestIPBan_IgnoresForwardedForWithDirectExtractor(t *testing.T) {
	list, err := ParseNetList("203.0.113.0/24")
	require.NoError(t, err)

	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()
	e.Use(IPBan(list))
	e.GET("/search", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	req.Header.Set(echo.HeaderXForwardedFor, "198.51.100.1")
	req.Header.Set(echo.HeaderXRealIP, "198.51.100.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
