package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time of day with minute resolution and no date component.
// GHCN-Daily time columns carry no seconds.
type ClockTime struct {
	Hour   int
	Minute int
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON encodes the time as a quoted "HH:MM" string.
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// DailySummary is one fully-keyed day of observations for a station.
//
// The zero value is the default record: every pointer field is nil, meaning
// the station never reported that category for the day, and every boolean
// flag is false, meaning the phenomenon did not occur. [Normalize] relies on
// this, so field absence must stay representable as the zero value.
type DailySummary struct {
	Date                             *time.Time `json:"date"`
	Station                          *string    `json:"station"`
	AvgTemp                          *int       `json:"avg_temp"`
	MinTemp                          *int       `json:"min_temp"`
	MaxTemp                          *int       `json:"max_temp"`
	Precipitation                    *float64   `json:"precipitation"`
	Snowfall                         *float64   `json:"snowfall"`
	SnowDepth                        *float64   `json:"snow_depth"`
	CloudinessMidnightToMidnight     *float64   `json:"cloudiness_midnight_to_midnight"`
	CloudinessSunriseToSunset        *float64   `json:"cloudiness_sunrise_to_sunset"`
	PercentPossibleSunshine          *int       `json:"percent_possible_sunshine"`
	TotalSunshine                    *int       `json:"total_sunshine"`
	FrozenGroundLayer                *int       `json:"frozen_ground_layer"`
	WaterEquivalentSnowOnGround      *float64   `json:"water_equivalent_snow_on_ground"`
	Fog                              bool       `json:"fog"`
	HeavyFog                         bool       `json:"heavy_fog"`
	Thunder                          bool       `json:"thunder"`
	Sleet                            bool       `json:"sleet"`
	Hail                             bool       `json:"hail"`
	Glaze                            bool       `json:"glaze"`
	Dust                             bool       `json:"dust"`
	Smoke                            bool       `json:"smoke"`
	BlowingSnow                      bool       `json:"blowing_snow"`
	HighWind                         bool       `json:"high_wind"`
	Mist                             bool       `json:"mist"`
	Drizzle                          bool       `json:"drizzle"`
	FreezingDrizzle                  bool       `json:"freezing_drizzle"`
	Rain                             bool       `json:"rain"`
	FreezingRain                     bool       `json:"freezing_rain"`
	Snow                             bool       `json:"snow"`
	OtherPrecipitation               bool       `json:"other_precipitation"`
	GroundFog                        bool       `json:"ground_fog"`
	IceFog                           bool       `json:"ice_fog"`
	FogInArea                        bool       `json:"fog_in_area"`
	ThunderInArea                    bool       `json:"thunder_in_area"`
	RainOrSnowInArea                 bool       `json:"rain_or_snow_in_area"`
	AvgWind                          *float64   `json:"avg_wind"`
	TimeFastestMileOrFastest1MinWind *ClockTime `json:"time_fastest_mile_or_fastest_1_minute_wind"`
	PeakGustTime                     *ClockTime `json:"peak_gust_time"`
	DirectionFastest1MinuteWind      *int       `json:"direction_fastest_1_minute_wind"`
	DirectionFastest2MinuteWind      *int       `json:"direction_fastest_2_minute_wind"`
	DirectionFastest5SecondWind      *int       `json:"direction_fastest_5_second_wind"`
	DirectionPeakGust                *int       `json:"direction_peak_gust"`
	DirectionFastestMileWind         *int       `json:"direction_fastest_mile_wind"`
	Fastest1MinuteWind               *float64   `json:"fastest_1_minute_wind"`
	Fastest2MinuteWind               *float64   `json:"fastest_2_minute_wind"`
	Fastest5SecondWind               *float64   `json:"fastest_5_second_wind"`
	PeakGust                         *float64   `json:"peak_gust"`
	FastestMileWind                  *float64   `json:"fastest_mile_wind"`
	AvgRelativeHumidity              *int       `json:"avg_relative_humidity"`
	MinRelativeHumidity              *int       `json:"min_relative_humidity"`
	MaxRelativeHumidity              *int       `json:"max_relative_humidity"`
	AvgSeaLevelPressure              *float64   `json:"avg_sea_level_pressure"`
	AvgStationPressure               *float64   `json:"avg_station_pressure"`
	AvgDewPointTemperature           *int       `json:"avg_dew_point_temperature"`
	AvgWetBulbTemperature            *int       `json:"avg_wet_bulb_temperature"`
}

// RawObservation is one upstream row exactly as the service sent it:
// category code to string value, key set varying day to day.
type RawObservation map[string]string

// Record is a translated, coerced, but not yet normalized row: descriptive
// field name to typed value, containing only the fields the source reported.
type Record map[string]any

func ptr[T any](v T) *T { return &v }
