package config

import "strings"

// RosterConfig controls where the club roster is loaded from.
type RosterConfig struct {
	Source          string // fixture, file or remote
	Path            string
	URL             string
	APIKey          string
	RefreshInterval Duration
	MinInterval     Duration // spacing between remote calls
	MaxAttempts     int
}

func loadRoster() RosterConfig {
	return RosterConfig{
		Source:          strings.ToLower(envOrDefault(envRosterSource, defaultRosterSource)),
		Path:            envOrDefault(envRosterPath, defaultRosterPath),
		URL:             envOrDefault(envRosterURL, ""),
		APIKey:          envOrDefault(envRosterAPIKey, ""),
		RefreshInterval: durationEnvOrDefault(envRosterRefresh, defaultRosterRefresh),
		MinInterval:     durationEnvOrDefault(envRosterMinGap, defaultRosterMinGap),
		MaxAttempts:     intEnvOrDefault(envRosterRetries, defaultRosterRetries),
	}
}
