package link

// DeviceInfo is the static view of an end device sent to the proxy.
type DeviceInfo struct {
	DevEUI     string
	DeviceName string
	Layout     string
	Source     Source
}
