package model

import "errors"

// Source error taxonomy. Every provider failure surfaced by a gateway wraps
// one of these so the orchestrator and the API layer can classify it with
// errors.Is.
var (
	// ErrTransport covers network failures and timeouts. Retryable at a
	// higher layer, never retried inside the pipeline.
	ErrTransport = errors.New("transport failure")

	// ErrNoUsableData means the provider answered with a structurally empty
	// forecast. The cached data is kept instead of being overwritten.
	ErrNoUsableData = errors.New("no usable data from provider")

	// ErrInvalidLocation means the location lacks required provider-specific
	// parameters, such as an unresolved grid or station id.
	ErrInvalidLocation = errors.New("location is missing provider parameters")

	// ErrOutdatedServerData means the provider's current-conditions
	// timestamp is implausibly old.
	ErrOutdatedServerData = errors.New("provider data is outdated")

	// ErrParsing means the payload had an unexpected shape.
	ErrParsing = errors.New("failed to parse provider payload")

	ErrApiKeyMissing   = errors.New("api key missing")
	ErrApiLimitReached = errors.New("api request limit reached")
	ErrApiUnauthorized = errors.New("api unauthorized")

	// ErrUnsupportedFeature means no registered source serves the feature
	// for the location.
	ErrUnsupportedFeature = errors.New("no source supports this feature for the location")
)
