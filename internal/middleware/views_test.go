package middleware

import (
	"net/http/httptest"
	"testing"

	"soclone/internal/models"

	"github.com/gin-gonic/gin"
)

func TestClientIPForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/questions/1", nil)
	r.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.9")
	r.RemoteAddr = "127.0.0.1:52000"

	if ip := ClientIP(r); ip != "10.0.0.1" {
		t.Errorf("Expected first forwarded token, got %q", ip)
	}
}

func TestClientIPRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7:40312"

	if ip := ClientIP(r); ip != "192.0.2.7" {
		t.Errorf("Expected host without port, got %q", ip)
	}
}

func TestClientIPRemoteAddrWithoutPort(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7"

	if ip := ClientIP(r); ip != "192.0.2.7" {
		t.Errorf("Expected address as-is, got %q", ip)
	}
}

func TestResolveIdentityAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/questions/5", nil)
	c.Request.RemoteAddr = "198.51.100.2:1234"

	userID, ip := ResolveIdentity(c)
	if userID != nil {
		t.Errorf("Expected nil user for anonymous request, got %v", *userID)
	}
	if ip != "198.51.100.2" {
		t.Errorf("Expected remote host, got %q", ip)
	}
}

func TestResolveIdentityLoggedIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/questions/5", nil)
	c.Request.RemoteAddr = "198.51.100.2:1234"
	c.Set(CheckUserKey, &models.User{ID: 42})

	userID, _ := ResolveIdentity(c)
	if userID == nil || *userID != 42 {
		t.Errorf("Expected user id 42, got %v", userID)
	}
}
