package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TCPPort     string
	HTTPPort    string
	MetricsPort string
	GRPCServer  string
	ProxyAddr   string
	RedisAddr   string

	// PortLayouts maps LoRaWAN FPort to a payload layout name.
	PortLayouts map[uint8]string
}

func Load() Config {
	return Config{
		TCPPort:     getEnv("TCP_PORT", "8001"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9000"),
		GRPCServer:  getEnv("GRPC_SERVER", "localhost:50051"),
		ProxyAddr:   getEnv("PROXY_ADDR", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		PortLayouts: parsePortLayouts(getEnv("PORT_LAYOUTS", "1=pytrack,2=pytrack-gnss,3=gnss-fix")),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// parsePortLayouts reads "1=pytrack,2=pytrack-gnss" pairs. Malformed
// entries are skipped so a bad env var cannot take the server down.
func parsePortLayouts(s string) map[uint8]string {
	out := make(map[uint8]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		port, layout, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(port), 10, 8)
		if err != nil {
			continue
		}
		layout = strings.TrimSpace(layout)
		if layout == "" {
			continue
		}
		out[uint8(n)] = layout
	}
	return out
}
