package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"lora-codec-svr/internal/codec"
	"lora-codec-svr/internal/dispatcher"
	"lora-codec-svr/internal/link"
	"lora-codec-svr/internal/observability"
	"lora-codec-svr/internal/platform"
	"lora-codec-svr/internal/store"
)

// NewMux builds the webhook surface for the network-server integrations.
func NewMux(lg *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /uplink/ttn", handleTTN(lg))
	mux.HandleFunc("POST /uplink/chirpstack", handleChirpStack(lg))
	mux.HandleFunc("GET /device/last", handleLastReading)
	return mux
}

// StartHTTP serves the webhook mux.
func StartHTTP(addr string, lg *slog.Logger) error {
	lg.Info("webhook server listening", "addr", addr)
	return http.ListenAndServe(addr, NewMux(lg))
}

func handleTTN(lg *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observability.WebhookRequests.WithLabelValues("ttn").Inc()

		var msg platform.TTNUplinkMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		devEUI := msg.EndDeviceIDs.DevEUI
		if devEUI == "" {
			http.Error(w, "missing dev_eui", http.StatusBadRequest)
			return
		}
		up := msg.UplinkMessage
		respondDecoded(w, lg, link.SourceTTN, devEUI, up.FPort, up.FCnt, up.FRMPayload)
	}
}

func handleChirpStack(lg *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observability.WebhookRequests.WithLabelValues("chirpstack").Inc()

		var ev platform.ChirpStackUplinkEvent
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		if ev.DeviceInfo.DevEUI == "" {
			http.Error(w, "missing devEui", http.StatusBadRequest)
			return
		}
		respondDecoded(w, lg, link.SourceChirpStack, ev.DeviceInfo.DevEUI, ev.FPort, ev.FCnt, ev.Data)
	}
}

func respondDecoded(w http.ResponseWriter, lg *slog.Logger, src link.Source, devEUI string, fPort uint8, fCnt uint32, payload []byte) {
	reading, err := dispatcher.ProcessUplink(src, devEUI, fPort, fCnt, payload)
	if err != nil {
		if errors.Is(err, codec.ErrUnsupportedLayout) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		lg.Error("uplink processing failed", "dev_eui", devEUI, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reading)
}

func handleLastReading(w http.ResponseWriter, r *http.Request) {
	eui := r.URL.Query().Get("eui")
	if eui == "" {
		http.Error(w, "missing eui", http.StatusBadRequest)
		return
	}
	readingJSON, ok := store.GetReading(eui)
	if !ok {
		http.Error(w, "no reading", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(readingJSON))
}
