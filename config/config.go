package config

import (
	"os"
	"strings"
)

type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	JWTSecret     string
	AdminAPIKey   string
	UploadDir     string
	PublicBaseURL string
	AdminEmails   []string
	// VerifyTotals enables server-side recomputation of order totals from
	// the item snapshots. Off by default: the storefront client declares
	// the total and historically it has been trusted as-is.
	VerifyTotals bool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	return Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("APP_PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminAPIKey:   getEnv("ADMIN_API_KEY", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		AdminEmails:   splitList(getEnv("ADMIN_EMAILS", "")),
		VerifyTotals:  getEnv("VERIFY_ORDER_TOTALS", "") == "true",
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsAdminEmail reports whether an email is on the configured admin list.
func (c Config) IsAdminEmail(email string) bool {
	for _, e := range c.AdminEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}
