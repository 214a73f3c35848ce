package config

import "time"

const (
	envPort          = "PORT"
	envAdminToken    = "ADMIN_TOKEN"
	envSelectionPath = "SELECTION_PATH"
	envRosterSource  = "ROSTER_SOURCE"
	envRosterPath    = "ROSTER_PATH"
	envRosterURL     = "ROSTER_URL"
	envRosterAPIKey  = "ROSTER_API_KEY"
	envRosterRefresh = "ROSTER_REFRESH_INTERVAL"
	envRosterRetries = "ROSTER_MAX_ATTEMPTS"
	envRosterMinGap  = "ROSTER_MIN_INTERVAL"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort          = "4000"
	defaultSelectionPath = "data/selected-players.json"
	defaultRosterSource  = "fixture"
	defaultRosterPath    = "data/players.json"
	// The roster changes rarely; a slow cadence is plenty and keeps remote sources quiet.
	defaultRosterRefresh = 5 * Duration(time.Minute)
	defaultRosterMinGap  = 10 * Duration(time.Second)
	defaultRosterRetries = 3
	defaultMetricsPort   = "9090"
	defaultServiceTag    = "squad-maker-service"
)
