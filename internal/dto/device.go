package dto

// SaveDeviceRequest registers a device against a user account.
type SaveDeviceRequest struct {
	User         string `json:"user" binding:"required"`
	Model        string `json:"model,omitempty"`
	Platform     string `json:"platform,omitempty"`
	UUID         string `json:"uuid,omitempty"`
	Version      string `json:"version,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Serial       string `json:"serial,omitempty"`
	PushToken    string `json:"pushToken,omitempty"`
}

// DeviceOwner is the trimmed user payload returned after device registration.
type DeviceOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SaveDeviceResponse confirms a device registration.
type SaveDeviceResponse struct {
	Message string      `json:"message"`
	User    DeviceOwner `json:"user"`
}
