package domain

// User is an application-level account used for authentication and audit
// references. Devices are attached separately and resolved on demand.
type User struct {
	Base
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Photo        string   `json:"photo,omitempty"`
	DeviceIDs    []string `json:"devices,omitempty"`
}

// Device is a registered client device. The push token is what the
// notification dispatcher sends to; devices without one are skipped.
type Device struct {
	Base
	UserID       string `json:"user"`
	Model        string `json:"model,omitempty"`
	Platform     string `json:"platform,omitempty"`
	UUID         string `json:"uuid,omitempty"`
	Version      string `json:"version,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Serial       string `json:"serial,omitempty"`
	PushToken    string `json:"pushToken,omitempty"`
}
