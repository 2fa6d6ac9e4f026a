package platform

// Webhook envelopes for the two network-server integrations. Only the
// fields the dispatcher needs survive here; []byte payloads unmarshal
// from the base64 the platforms emit.

type TTNDeviceIDs struct {
	DeviceID string `json:"device_id,omitempty"`
	DevEUI   string `json:"dev_eui,omitempty"`
	DevAddr  string `json:"dev_addr,omitempty"`
}

type TTNUplink struct {
	FPort      uint8  `json:"f_port"`
	FCnt       uint32 `json:"f_cnt"`
	FRMPayload []byte `json:"frm_payload,omitempty"`
	ReceivedAt string `json:"received_at,omitempty"`
}

// TTNUplinkMessage is the TTN v3 webhook body.
type TTNUplinkMessage struct {
	EndDeviceIDs  TTNDeviceIDs `json:"end_device_ids"`
	ReceivedAt    string       `json:"received_at,omitempty"`
	UplinkMessage TTNUplink    `json:"uplink_message"`
}

type ChirpStackDeviceInfo struct {
	DevEUI     string `json:"devEui"`
	DeviceName string `json:"deviceName,omitempty"`
}

// ChirpStackUplinkEvent is the ChirpStack v4 "up" integration event body.
type ChirpStackUplinkEvent struct {
	DeviceInfo ChirpStackDeviceInfo `json:"deviceInfo"`
	FPort      uint8                `json:"fPort"`
	FCnt       uint32               `json:"fCnt"`
	Data       []byte               `json:"data"`
	Time       string               `json:"time,omitempty"`
}
