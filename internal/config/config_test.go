package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "8001", cfg.TCPPort)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, map[uint8]string{
		1: "pytrack",
		2: "pytrack-gnss",
		3: "gnss-fix",
	}, cfg.PortLayouts)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TCP_PORT", "9001")
	t.Setenv("PORT_LAYOUTS", "10=gnss-fix")
	cfg := Load()
	require.Equal(t, "9001", cfg.TCPPort)
	require.Equal(t, map[uint8]string{10: "gnss-fix"}, cfg.PortLayouts)
}

func TestParsePortLayoutsSkipsMalformed(t *testing.T) {
	got := parsePortLayouts("1=pytrack, nope, 999=gnss-fix, 2=, =x, 3 = gnss-fix")
	require.Equal(t, map[uint8]string{1: "pytrack", 3: "gnss-fix"}, got)
}
