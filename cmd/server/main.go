package main

import (
	"lora-codec-svr/internal/config"
	"lora-codec-svr/internal/dispatcher"
	"lora-codec-svr/internal/grpcclient"
	"lora-codec-svr/internal/link"
	"lora-codec-svr/internal/observability"
	"lora-codec-svr/internal/server"
	"lora-codec-svr/internal/store"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	logger.Info("Starting lora-codec-svr...", "http_port", cfg.HTTPPort, "tcp_port", cfg.TCPPort)

	if err := store.InitRedis(cfg.RedisAddr, 0); err != nil {
		logger.Error("Redis init failed", "error", err)
		return
	}
	link.Init(cfg.ProxyAddr, logger)

	var fw *grpcclient.GRPCClient
	if cfg.GRPCServer != "" {
		c, err := grpcclient.NewGRPCClient(cfg.GRPCServer)
		if err != nil {
			logger.Error("gRPC forwarder init failed", "error", err)
			return
		}
		defer c.Close()
		fw = c
	}

	dispatcher.Init(cfg.PortLayouts, fw, logger, true)

	go observability.StartMetricsServer(cfg.MetricsPort)
	go func() {
		if err := server.StartBridge(":"+cfg.TCPPort, logger); err != nil {
			logger.Error("TCP bridge failed", "error", err)
		}
	}()

	if err := server.StartHTTP(":"+cfg.HTTPPort, logger); err != nil {
		logger.Error("HTTP server failed", "error", err)
	}
}
