package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr with port", "203.0.113.7:51234", nil, "203.0.113.7"},
		{"remote addr without port", "203.0.113.7", nil, "203.0.113.7"},
		{"x-forwarded-for chain", "10.0.0.1:80",
			map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.2"}, "198.51.100.4"},
		{"x-forwarded-for single", "10.0.0.1:80",
			map[string]string{"X-Forwarded-For": " 198.51.100.4 "}, "198.51.100.4"},
		{"x-real-ip", "10.0.0.1:80",
			map[string]string{"X-Real-IP": "198.51.100.9"}, "198.51.100.9"},
		{"forwarded-for beats real-ip", "10.0.0.1:80",
			map[string]string{"X-Forwarded-For": "198.51.100.4", "X-Real-IP": "198.51.100.9"},
			"198.51.100.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, getClientIP(testContext(tc.remoteAddr, tc.headers)))
		})
	}
}
