package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"time"

	"lora-codec-svr/internal/dispatcher"
	"lora-codec-svr/internal/link"
	"lora-codec-svr/internal/observability"
)

// bridgeUplink is one NDJSON line from a local packet-forwarder bridge.
type bridgeUplink struct {
	DevEUI  string `json:"dev_eui"`
	FPort   uint8  `json:"f_port"`
	FCnt    uint32 `json:"f_cnt"`
	Payload []byte `json:"payload"`
}

// StartBridge listens for bridge connections and feeds their uplink lines
// to the dispatcher.
func StartBridge(addr string, lg *slog.Logger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error starting TCP bridge: %w", err)
	}
	defer listener.Close()

	log.Printf("[INFO] TCP bridge listening on %s", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("[ERROR] accept error: %v", err)
			continue
		}
		observability.IngestConnections.Inc()
		go handleBridgeConn(conn, lg)
	}
}

func handleBridgeConn(conn net.Conn, lg *slog.Logger) {
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetLinger(0)
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetKeepAlivePeriod(60 * time.Second)
	}

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		up, err := parseBridgeLine(sc.Bytes())
		if err != nil {
			lg.Warn("bridge: bad line", "remote", conn.RemoteAddr().String(), "err", err)
			continue
		}
		if _, err := dispatcher.ProcessUplink(link.SourceBridge, up.DevEUI, up.FPort, up.FCnt, up.Payload); err != nil {
			lg.Warn("bridge: uplink dropped", "dev_eui", up.DevEUI, "err", err)
		}
	}
	if err := sc.Err(); err != nil {
		lg.Warn("bridge: read error", "remote", conn.RemoteAddr().String(), "err", err)
	}
}

func parseBridgeLine(line []byte) (bridgeUplink, error) {
	var up bridgeUplink
	if err := json.Unmarshal(line, &up); err != nil {
		return up, fmt.Errorf("bridge line: %w", err)
	}
	if up.DevEUI == "" {
		return up, fmt.Errorf("bridge line: missing dev_eui")
	}
	return up, nil
}
