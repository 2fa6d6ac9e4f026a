package pipeline

// Reading is the flattened view of one decoded uplink, the shape pushed to
// the proxy link and the gRPC forwarder.
type Reading struct {
	DevEUI   string `json:"dev_eui"`
	Layout   string `json:"layout"`
	Datetime string `json:"dt"`
	FPort    int    `json:"f_port"`
	FCnt     int    `json:"f_cnt,omitempty"`

	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Height float64 `json:"height,omitempty"`
	HDOP   float64 `json:"hdop,omitempty"`

	// Fields carries the full decoded record, nulls included.
	Fields map[string]any `json:"fields"`

	Fix int `json:"fix"` // 1 when the position can be trusted
}
