package secret

import "conversion-relay-service/internal/relay/core/ports"

// Static serves a credential resolved once at startup. Tests substitute
// their own SecretProviderPort instead of touching the environment.
type Static string

func (s Static) AccessToken() string { return string(s) }

var _ ports.SecretProviderPort = Static("")
