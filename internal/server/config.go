package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/faq-hunter/internal/middleware"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/stringsutil"
)

type Config struct {
	Port           string
	UseHttp2       bool
	CorsOrigins    []string
	BannedIPs      *middleware.NetList
	// TrustedProxies may set X-Forwarded-For and the identity headers.
	TrustedProxies *middleware.NetList
}

// LoadConfig reads PORT, USE_HTTP2, CORS_ORIGINS, BANNED_IPS and
// TRUSTED_PROXIES. The .env file, if any, is loaded by the command beforehand.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitList(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	banned, err := middleware.ParseNetList(os.Getenv("BANNED_IPS"))
	if err != nil {
		return nil, fmt.Errorf("invalid BANNED_IPS: %w", err)
	}

	proxies, err := middleware.ParseNetList(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	return &Config{
		Port:           port,
		UseHttp2:       useHttp2,
		CorsOrigins:    origins,
		BannedIPs:      banned,
		TrustedProxies: proxies,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
