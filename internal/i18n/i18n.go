package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LocaleEN = "en-US"
	LocaleZH = "zh-CN"
	LocaleTW = "zh-TW"

	DefaultLocale = LocaleEN
	localeHeader  = "X-Locale"
	localeQuery   = "lang"
)

// SupportedLocales 支持的语言
var SupportedLocales = []string{LocaleEN, LocaleZH, LocaleTW}

// T 按语言查找文案，缺失时回退到默认语言，再缺失返回 key
func T(locale, key string) string {
	locale = NormalizeLocale(locale)
	if msg, ok := lookup(locale, key); ok {
		return msg
	}
	if locale == LocaleTW {
		if msg, ok := lookup(LocaleZH, key); ok {
			return msg
		}
	}
	if msg, ok := lookup(DefaultLocale, key); ok {
		return msg
	}
	return key
}

// Sprintf 查找文案后按参数格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

// ResolveLocale 从请求中解析语言：query > X-Locale > Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if v := strings.TrimSpace(c.Query(localeQuery)); v != "" {
		return NormalizeLocale(v)
	}
	if v := strings.TrimSpace(c.GetHeader(localeHeader)); v != "" {
		return NormalizeLocale(v)
	}
	return parseAcceptLanguage(c.GetHeader("Accept-Language"))
}

// NormalizeLocale 统一语言标识，未知语言返回默认语言
func NormalizeLocale(locale string) string {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	switch {
	case normalized == "":
		return DefaultLocale
	case normalized == "zh-tw" || normalized == "zh-hk" || normalized == "zh-hant" || strings.HasPrefix(normalized, "zh-hant-"):
		return LocaleTW
	case strings.HasPrefix(normalized, "zh"):
		return LocaleZH
	case strings.HasPrefix(normalized, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

func parseAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}
		normalized := strings.ToLower(tag)
		if strings.HasPrefix(normalized, "zh") || strings.HasPrefix(normalized, "en") {
			return NormalizeLocale(tag)
		}
	}
	return DefaultLocale
}

func lookup(locale, key string) (string, bool) {
	table, ok := messages[locale]
	if !ok {
		return "", false
	}
	msg, ok := table[key]
	return msg, ok
}
