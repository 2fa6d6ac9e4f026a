package server

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lora-codec-svr/internal/dispatcher"
	"lora-codec-svr/internal/observability"
	"lora-codec-svr/internal/pipeline"
)

func setupMux(t *testing.T) *httptest.Server {
	t.Helper()
	dispatcher.Init(map[uint8]string{
		1: "pytrack",
		2: "pytrack-gnss",
		3: "gnss-fix",
	}, nil, observability.NewLogger(), false)
	srv := httptest.NewServer(NewMux(observability.NewLogger()))
	t.Cleanup(srv.Close)
	return srv
}

func trackerB64(vals ...float32) string {
	out := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		out = append(out, b[:]...)
	}
	return base64.StdEncoding.EncodeToString(out)
}

func TestTTNWebhook(t *testing.T) {
	srv := setupMux(t)

	payload := trackerB64(48.8566, 2.3522, 0.01, -0.02, 0.98, 1.5, -2.5, 42, 3)
	body := `{
		"end_device_ids": {"device_id": "pytrack-01", "dev_eui": "70B3D57ED0001234"},
		"uplink_message": {"f_port": 1, "f_cnt": 7, "frm_payload": "` + payload + `"}
	}`
	resp, err := http.Post(srv.URL+"/uplink/ttn", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reading pipeline.Reading
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reading))
	require.Equal(t, "70B3D57ED0001234", reading.DevEUI)
	require.Equal(t, "pytrack", reading.Layout)
	require.InDelta(t, 48.8566, reading.Lat, 1e-4)
	require.Equal(t, 1, reading.Fix)
}

func TestChirpStackWebhook(t *testing.T) {
	srv := setupMux(t)

	raw := make([]byte, 16)
	raw[0] = 0x02
	binary.BigEndian.PutUint32(raw[4:8], 2352200)
	binary.BigEndian.PutUint32(raw[8:12], 48856600)
	body := `{"deviceInfo": {"devEui": "70b3d57ed0005678"}, "fPort": 3, "fCnt": 12, "data": "` +
		base64.StdEncoding.EncodeToString(raw) + `"}`

	resp, err := http.Post(srv.URL+"/uplink/chirpstack", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reading pipeline.Reading
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reading))
	require.Equal(t, "gnss-fix", reading.Layout)
	require.InDelta(t, 48.8566, reading.Lat, 1e-6)
}

func TestWebhookUnmappedPort(t *testing.T) {
	srv := setupMux(t)

	body := `{
		"end_device_ids": {"dev_eui": "70B3D57ED0001234"},
		"uplink_message": {"f_port": 99, "frm_payload": "` + trackerB64(1, 2, 3) + `"}
	}`
	resp, err := http.Post(srv.URL+"/uplink/ttn", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestWebhookBadBody(t *testing.T) {
	srv := setupMux(t)

	resp, err := http.Post(srv.URL+"/uplink/ttn", "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/uplink/ttn", "application/json", strings.NewReader(`{"uplink_message":{"f_port":1}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseBridgeLine(t *testing.T) {
	up, err := parseBridgeLine([]byte(`{"dev_eui":"70B3D57ED0001234","f_port":1,"payload":"AAAAAA=="}`))
	require.NoError(t, err)
	require.Equal(t, "70B3D57ED0001234", up.DevEUI)
	require.Equal(t, uint8(1), up.FPort)
	require.Equal(t, []byte{0, 0, 0, 0}, up.Payload)

	_, err = parseBridgeLine([]byte(`{"f_port":1}`))
	require.Error(t, err)

	_, err = parseBridgeLine([]byte(`not json`))
	require.Error(t, err)
}
