package domain

// EventRecord is one logical business event. EventID is minted once per
// occurrence and shared by both delivery channels; it is the key the
// upstream platform uses to deduplicate the browser hit and the server hit.
type EventRecord struct {
	EventName string
	EventID   string
	Params    map[string]any
	User      *UserData
}

// UserData is the identity subset attached when a signed-in user
// triggered the event. Fields travel to the relay in cleartext; the
// relay hashes them before anything leaves for the upstream API.
type UserData struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// RelaySettings configures the pipeline per call. An empty
// AccountPixelID means tracking is disabled, not an error. An empty
// RelayURL skips server-side delivery only.
type RelaySettings struct {
	AccountPixelID string
	RelayURL       string
}

// RelayPayload is the wire body POSTed to the relay endpoint.
type RelayPayload struct {
	EventName string          `json:"eventName"`
	EventID   string          `json:"eventId"`
	EventData map[string]any  `json:"eventData"`
	UserData  *UserPayload    `json:"userData,omitempty"`
	Settings  SettingsPayload `json:"settings"`
}

type UserPayload struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type SettingsPayload struct {
	AccountPixelID string `json:"accountPixelId"`
}
