package dispatcher

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"lora-codec-svr/internal/codec"
	"lora-codec-svr/internal/grpcclient"
	"lora-codec-svr/internal/link"
	"lora-codec-svr/internal/observability"
	"lora-codec-svr/internal/pipeline"
	"lora-codec-svr/internal/store"
	"lora-codec-svr/internal/utilities"
)

var (
	portLayouts map[uint8]string
	fw          *grpcclient.GRPCClient
	logger      *slog.Logger
	audit       bool

	seenMu      sync.Mutex
	seenDevices = make(map[string]bool)
)

// Init wires the dispatcher. fwClient may be nil when no forwarder is
// configured; auditLog enables the raw-frame file trail.
func Init(layouts map[uint8]string, fwClient *grpcclient.GRPCClient, lg *slog.Logger, auditLog bool) {
	portLayouts = layouts
	fw = fwClient
	logger = lg
	audit = auditLog
}

// ProcessUplink decodes one uplink frame and fans the reading out to redis,
// the proxy link and the gRPC forwarder. Persistence and forwarding are
// best-effort: only an unmapped or unknown layout fails the call.
func ProcessUplink(src link.Source, devEUI string, fPort uint8, fCnt uint32, payload []byte) (*pipeline.Reading, error) {
	start := time.Now()
	defer observability.ObserveDecodeLatency(start)

	observability.UplinksRecv.Inc()
	if audit {
		utilities.CreateLog("UPLINKS", devEUI+" "+hex.EncodeToString(payload))
	}

	layout, ok := portLayouts[fPort]
	if !ok {
		observability.DecodeErrors.Inc()
		return nil, fmt.Errorf("%w: no layout mapped to fport %d", codec.ErrUnsupportedLayout, fPort)
	}

	rec, err := codec.Decode(layout, payload)
	if err != nil {
		observability.DecodeErrors.Inc()
		return nil, err
	}
	observability.RecordsDecoded.WithLabelValues(layout).Inc()

	for _, v := range rec {
		if v == nil {
			observability.NullFields.Inc()
		}
	}

	reading := pipeline.BuildReading(devEUI, layout, fPort, fCnt, rec, time.Now())

	markSeen(src, devEUI, layout)
	persist(reading)
	link.SendReading(reading)
	forward(reading)

	return reading, nil
}

func markSeen(src link.Source, devEUI, layout string) {
	seenMu.Lock()
	first := !seenDevices[devEUI]
	seenDevices[devEUI] = true
	seenMu.Unlock()

	if first {
		if logger != nil {
			logger.Info("device seen", "dev_eui", devEUI, "layout", layout, "source", src)
		}
		link.SendDeviceSeen(link.DeviceInfo{DevEUI: devEUI, Layout: layout, Source: src})
	}
}

func persist(r *pipeline.Reading) {
	b, err := json.Marshal(r)
	if err != nil {
		if logger != nil {
			logger.Error("reading marshal failed", "dev_eui", r.DevEUI, "err", err)
		}
		return
	}
	if !store.SaveReadingSafe(r.DevEUI, string(b)) {
		observability.RedisSetErrors.Inc()
	}

	// Fix transitions matter downstream; keep the previous state keyed in
	// redis so reconnects do not replay them.
	fixKey := "dev:" + r.DevEUI + ":fix"
	now := strconv.Itoa(r.Fix)
	if prev := store.GetStringSafe(fixKey); prev != "" && prev != now && logger != nil {
		logger.Info("fix state changed", "dev_eui", r.DevEUI, "from", prev, "to", now)
	}
	store.SaveStringSafe(fixKey, now)

	if _, n, err := store.IncDailyUplinkCounter(r.DevEUI, 0); err == nil && n > 0 && logger != nil {
		logger.Debug("uplink counted", "dev_eui", r.DevEUI, "daily", n)
	}
}

func forward(r *pipeline.Reading) {
	if fw == nil {
		return
	}
	b, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := fw.SendReading(r.DevEUI, string(b)); err != nil && logger != nil {
		logger.Warn("forwarder send failed", "dev_eui", r.DevEUI, "err", err)
	}
}
