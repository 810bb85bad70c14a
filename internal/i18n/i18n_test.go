package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTFallsBack(t *testing.T) {
	if got := T(LocaleTW, "error.cart_not_found"); got != "购物车不存在" {
		t.Fatalf("zh-TW should fall back to zh-CN, got %q", got)
	}
	if got := T("fr-FR", "error.cart_empty"); got != "The cart is empty." {
		t.Fatalf("unknown locale should use default, got %q", got)
	}
	if got := T(LocaleEN, "error.missing_key"); got != "error.missing_key" {
		t.Fatalf("missing key should return key, got %q", got)
	}
	if got := Sprintf(LocaleEN, "error.rate_limited", 30); got != "Too many requests, please retry in 30 seconds" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		url    string
		header map[string]string
		want   string
	}{
		{name: "default", url: "/", want: LocaleEN},
		{name: "query", url: "/?lang=zh_CN", want: LocaleZH},
		{name: "header", url: "/", header: map[string]string{"X-Locale": "zh-TW"}, want: LocaleTW},
		{name: "accept language", url: "/", header: map[string]string{"Accept-Language": "de-DE;q=0.9, zh-Hans-CN;q=0.8"}, want: LocaleZH},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tc.url, nil)
			for k, v := range tc.header {
				c.Request.Header.Set(k, v)
			}
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
