// Package i18n provides internationalization support for the storefront service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "th-TH,th;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "th" from "th-TH")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.conflict":                 "Conflict",
			"error.timeout":                  "Request timed out",
			"error.database_unavailable":     "Database is unavailable, please try again later",
			"error.validation.items":         "items: must contain at least one item",
			"error.validation.total_weight":  "total_weight: must not be negative",
			"error.container_spec_not_found": "Unknown container spec",
			"error.invalid_id":               "Invalid id",

			// Success messages
			"success.order_created":     "Order created successfully",
			"success.summary_generated": "Summary generated successfully",
		},
		"th": {
			// Error messages
			"error.invalid_request":          "คำขอไม่ถูกต้อง",
			"error.invalid_request_body":     "ข้อมูลคำขอไม่ถูกต้อง",
			"error.internal_error":           "เกิดข้อผิดพลาดที่ไม่คาดคิด",
			"error.not_found":                "ไม่พบข้อมูล",
			"error.rate_limit_exceeded":      "คำขอมากเกินไป กรุณาลองใหม่ภายหลัง",
			"error.conflict":                 "ข้อมูลขัดแย้งกับสถานะปัจจุบัน",
			"error.timeout":                  "คำขอหมดเวลา",
			"error.database_unavailable":     "ฐานข้อมูลไม่พร้อมใช้งาน กรุณาลองใหม่ภายหลัง",
			"error.validation.items":         "ต้องมีสินค้าอย่างน้อยหนึ่งรายการ",
			"error.validation.total_weight":  "น้ำหนักรวมต้องไม่ติดลบ",
			"error.container_spec_not_found": "ไม่พบบรรจุภัณฑ์ที่เลือก",
			"error.invalid_id":               "รหัสไม่ถูกต้อง",

			// Success messages
			"success.order_created":     "บันทึกออเดอร์เรียบร้อย",
			"success.summary_generated": "สร้างสรุปออเดอร์เรียบร้อย",
		},
	}
}
