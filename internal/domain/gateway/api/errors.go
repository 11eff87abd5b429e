package api

import "github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"

// classifyStatus maps an HTTP status to the source error taxonomy. Status 0
// means the request never produced a response.
func classifyStatus(status int) error {
	switch status {
	case 401, 403:
		return model.ErrApiUnauthorized
	case 429:
		return model.ErrApiLimitReached
	default:
		return model.ErrTransport
	}
}
