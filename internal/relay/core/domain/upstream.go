package domain

// UserData is the raw identity subset received from the client. The
// relay hashes these fields before anything is sent upstream.
type UserData struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// UpstreamUserData carries the Conversions API identity block. Hashed
// fields use the platform's short keys; ip and user agent travel as-is.
type UpstreamUserData struct {
	Email           string `json:"em,omitempty"`
	Phone           string `json:"ph,omitempty"`
	FirstName       string `json:"fn,omitempty"`
	LastName        string `json:"ln,omitempty"`
	ClientIPAddress string `json:"client_ip_address,omitempty"`
	ClientUserAgent string `json:"client_user_agent,omitempty"`
}

// UpstreamEvent is one element of the Conversions API event list.
// EventID is the client-minted deduplication key passed through
// unchanged; it is what lets the platform collapse the browser hit and
// this server hit into one occurrence.
type UpstreamEvent struct {
	EventName    string           `json:"event_name"`
	EventTime    int64            `json:"event_time"`
	ActionSource string           `json:"action_source"`
	EventID      string           `json:"event_id"`
	UserData     UpstreamUserData `json:"user_data"`
	CustomData   map[string]any   `json:"custom_data,omitempty"`
}
