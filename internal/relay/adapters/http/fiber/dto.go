package fiber

// ForwardEventRequest is the body POSTed by the relay client.
// @Description Conversion event relay DTO
type ForwardEventRequest struct {
	EventName string         `json:"eventName"`
	EventID   string         `json:"eventId"`
	EventData map[string]any `json:"eventData"`
	UserData  UserDataDTO    `json:"userData"`
	Settings  SettingsDTO    `json:"settings"`
}

type UserDataDTO struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type SettingsDTO struct {
	AccountPixelID string `json:"accountPixelId"`
}

type ForwardEventResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Event forwarded."`
}
