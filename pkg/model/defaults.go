package model

import (
	"time"
)

const (
	DefaultCurrency           = "usd"
	DefaultSignatureTolerance = 5 * time.Minute
	DefaultEventTTL           = 72 * time.Hour
	DefaultSweepSchedule      = "@every 5m"
	DefaultPort               = 8080
	DefaultEventsTopic        = "pledge-events"
	DefaultStatsMetric        = "pledges"
)
