package race

import (
	"fmt"
	"strings"
)

// Config holds the rules applied to races on their way into the EVT file.
type Config struct {
	// TrimSuffixes are removed from the end of a race group before the event
	// name is composed.
	TrimSuffixes []string `mapstructure:"trim_suffixes" default:"male,female"`
	// DistanceLaps maps distances to lap counts ("500=4.5,1000=9").
	DistanceLaps string `mapstructure:"distance_laps" default:"333=3,500=4.5,777=7,1000=9,1500=13.5,3000=27"`
	// LapOverride, when set, replaces the lap count of every imported race.
	LapOverride string `mapstructure:"lap_override" default:""`
}

// Override parses LapOverride. It returns nil when no override is configured.
func (c Config) Override() (*float64, error) {
	if strings.TrimSpace(c.LapOverride) == "" {
		return nil, nil
	}
	l := ParseLaps(c.LapOverride)
	if l == nil || *l < 0 {
		return nil, fmt.Errorf("invalid lap override %q", c.LapOverride)
	}
	return l, nil
}
