package link

// Source identifies which ingest surface an uplink arrived through.
type Source string

const (
	SourceTTN        Source = "ttn"
	SourceChirpStack Source = "chirpstack"
	SourceBridge     Source = "bridge"
)
