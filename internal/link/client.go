package link

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"lora-codec-svr/internal/pipeline"
)

var (
	proxyAddr string
	logger    *slog.Logger

	mu   sync.Mutex
	conn net.Conn
)

// Init starts the TCP client toward the downstream proxy.
// With addr == "" the link stays disabled and every send is a no-op.
func Init(addr string, lg *slog.Logger) {
	proxyAddr = addr
	if proxyAddr == "" {
		lg.Info("link: disabled (no proxy address configured)")
		return
	}
	logger = lg.With("component", "link")

	go connectLoop()
}

func connectLoop() {
	for {
		c, err := net.Dial("tcp", proxyAddr)
		if err != nil {
			if logger != nil {
				logger.Error("link: dial failed", "addr", proxyAddr, "err", err)
			}
			time.Sleep(5 * time.Second)
			continue
		}

		setConn(c)
		if logger != nil {
			logger.Info("link: connected", "remote", c.RemoteAddr().String())
		}

		readLoop(c)

		clearConn(c)
		if logger != nil {
			logger.Warn("link: connection closed, reconnecting...")
		}
		time.Sleep(2 * time.Second)
	}
}

func setConn(c net.Conn) {
	mu.Lock()
	defer mu.Unlock()
	conn = c
}

func clearConn(c net.Conn) {
	mu.Lock()
	defer mu.Unlock()
	if conn == c {
		_ = conn.Close()
		conn = nil
	}
}

func getConn() net.Conn {
	mu.Lock()
	defer mu.Unlock()
	return conn
}

func readLoop(c net.Conn) {
	r := bufio.NewScanner(c)
	for r.Scan() {
		handleIncomingLine(r.Bytes())
	}
	if err := r.Err(); err != nil && err != io.EOF {
		if logger != nil {
			logger.Warn("link: read error", "err", err)
		}
	}
}

// The proxy does not talk back yet; anything it says is only logged.
func handleIncomingLine(line []byte) {
	if logger != nil {
		logger.Info("link: incoming line", "line", string(line))
	}
}

func sendNDJSON(v interface{}) error {
	c := getConn()
	if c == nil {
		return fmt.Errorf("link: not connected")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.Write(append(b, '\n'))
	return err
}

// device_seen
type deviceSeenPayload struct {
	DeviceSeen bool   `json:"device_seen"`
	DevEUI     string `json:"dev_eui"`
	DeviceName string `json:"device_name,omitempty"`
	Layout     string `json:"layout,omitempty"`
	Source     Source `json:"source,omitempty"`
}

// SendDeviceSeen is called on the first uplink of a device in this process.
func SendDeviceSeen(info DeviceInfo) {
	if proxyAddr == "" {
		return
	}
	pl := deviceSeenPayload{
		DeviceSeen: true,
		DevEUI:     info.DevEUI,
		DeviceName: info.DeviceName,
		Layout:     info.Layout,
		Source:     info.Source,
	}
	if err := sendNDJSON(pl); err != nil && logger != nil {
		logger.Warn("link: send device_seen failed", "dev_eui", info.DevEUI, "err", err)
	}
}

// SendReading pushes one decoded reading as NDJSON.
func SendReading(r *pipeline.Reading) {
	if proxyAddr == "" || r == nil {
		return
	}
	if err := sendNDJSON(r); err != nil && logger != nil {
		logger.Warn("link: send reading failed", "dev_eui", r.DevEUI, "err", err)
	}
}
