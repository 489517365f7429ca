package domain

import "time"

// FieldType is the declared semantic type of a schema field. Coercion in
// [TranslateAndCoerce] switches exhaustively over these variants.
type FieldType int

const (
	TypeText FieldType = iota
	TypeInteger
	TypeReal
	TypeBoolean
	TypeDate
	TypeTime
)

func (t FieldType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeReal:
		return "real"
	case TypeBoolean:
		return "boolean"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	default:
		return "unknown"
	}
}

// Field binds an upstream category code to its descriptive name, declared
// type, and the DailySummary field it populates.
type Field struct {
	Code string
	Name string
	Type FieldType

	assign func(*DailySummary, any)
}

// Schema is the full ordered GHCN-Daily category table. It is built once at
// process start and never mutated; iteration order is the declaration order
// below and fixes the field order of normalized output.
var Schema = []Field{
	{Code: "DATE", Name: "date", Type: TypeDate, assign: func(d *DailySummary, v any) { d.Date = ptr(v.(time.Time)) }},
	{Code: "STATION", Name: "station", Type: TypeText, assign: func(d *DailySummary, v any) { d.Station = ptr(v.(string)) }},
	{Code: "TAVG", Name: "avg_temp", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.AvgTemp = ptr(v.(int)) }},
	{Code: "TMIN", Name: "min_temp", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.MinTemp = ptr(v.(int)) }},
	{Code: "TMAX", Name: "max_temp", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.MaxTemp = ptr(v.(int)) }},
	{Code: "PRCP", Name: "precipitation", Type: TypeReal, assign: func(d *DailySummary, v any) { d.Precipitation = ptr(v.(float64)) }},
	{Code: "SNOW", Name: "snowfall", Type: TypeReal, assign: func(d *DailySummary, v any) { d.Snowfall = ptr(v.(float64)) }},
	{Code: "SNWD", Name: "snow_depth", Type: TypeReal, assign: func(d *DailySummary, v any) { d.SnowDepth = ptr(v.(float64)) }},
	{Code: "ACMH", Name: "cloudiness_midnight_to_midnight", Type: TypeReal, assign: func(d *DailySummary, v any) { d.CloudinessMidnightToMidnight = ptr(v.(float64)) }},
	{Code: "ACSH", Name: "cloudiness_sunrise_to_sunset", Type: TypeReal, assign: func(d *DailySummary, v any) { d.CloudinessSunriseToSunset = ptr(v.(float64)) }},
	{Code: "PSUN", Name: "percent_possible_sunshine", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.PercentPossibleSunshine = ptr(v.(int)) }},
	{Code: "TSUN", Name: "total_sunshine", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.TotalSunshine = ptr(v.(int)) }},
	{Code: "FRGT", Name: "frozen_ground_layer", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.FrozenGroundLayer = ptr(v.(int)) }},
	{Code: "WESD", Name: "water_equivalent_snow_on_ground", Type: TypeReal, assign: func(d *DailySummary, v any) { d.WaterEquivalentSnowOnGround = ptr(v.(float64)) }},
	{Code: "WT01", Name: "fog", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Fog = v.(bool) }},
	{Code: "WT02", Name: "heavy_fog", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.HeavyFog = v.(bool) }},
	{Code: "WT03", Name: "thunder", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Thunder = v.(bool) }},
	{Code: "WT04", Name: "sleet", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Sleet = v.(bool) }},
	{Code: "WT05", Name: "hail", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Hail = v.(bool) }},
	{Code: "WT06", Name: "glaze", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Glaze = v.(bool) }},
	{Code: "WT07", Name: "dust", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Dust = v.(bool) }},
	{Code: "WT08", Name: "smoke", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Smoke = v.(bool) }},
	{Code: "WT09", Name: "blowing_snow", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.BlowingSnow = v.(bool) }},
	{Code: "WT11", Name: "high_wind", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.HighWind = v.(bool) }},
	{Code: "WT13", Name: "mist", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Mist = v.(bool) }},
	{Code: "WT14", Name: "drizzle", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Drizzle = v.(bool) }},
	{Code: "WT15", Name: "freezing_drizzle", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.FreezingDrizzle = v.(bool) }},
	{Code: "WT16", Name: "rain", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Rain = v.(bool) }},
	{Code: "WT17", Name: "freezing_rain", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.FreezingRain = v.(bool) }},
	{Code: "WT18", Name: "snow", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.Snow = v.(bool) }},
	{Code: "WT19", Name: "other_precipitation", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.OtherPrecipitation = v.(bool) }},
	{Code: "WT21", Name: "ground_fog", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.GroundFog = v.(bool) }},
	{Code: "WT22", Name: "ice_fog", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.IceFog = v.(bool) }},
	{Code: "WV01", Name: "fog_in_area", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.FogInArea = v.(bool) }},
	{Code: "WV03", Name: "thunder_in_area", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.ThunderInArea = v.(bool) }},
	{Code: "WV20", Name: "rain_or_snow_in_area", Type: TypeBoolean, assign: func(d *DailySummary, v any) { d.RainOrSnowInArea = v.(bool) }},
	{Code: "AWND", Name: "avg_wind", Type: TypeReal, assign: func(d *DailySummary, v any) { d.AvgWind = ptr(v.(float64)) }},
	{Code: "FMTM", Name: "time_fastest_mile_or_fastest_1_minute_wind", Type: TypeTime, assign: func(d *DailySummary, v any) { d.TimeFastestMileOrFastest1MinWind = ptr(v.(ClockTime)) }},
	{Code: "PGTM", Name: "peak_gust_time", Type: TypeTime, assign: func(d *DailySummary, v any) { d.PeakGustTime = ptr(v.(ClockTime)) }},
	{Code: "WDF1", Name: "direction_fastest_1_minute_wind", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.DirectionFastest1MinuteWind = ptr(v.(int)) }},
	{Code: "WDF2", Name: "direction_fastest_2_minute_wind", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.DirectionFastest2MinuteWind = ptr(v.(int)) }},
	{Code: "WDF5", Name: "direction_fastest_5_second_wind", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.DirectionFastest5SecondWind = ptr(v.(int)) }},
	{Code: "WDFG", Name: "direction_peak_gust", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.DirectionPeakGust = ptr(v.(int)) }},
	{Code: "WDFM", Name: "direction_fastest_mile_wind", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.DirectionFastestMileWind = ptr(v.(int)) }},
	{Code: "WSF1", Name: "fastest_1_minute_wind", Type: TypeReal, assign: func(d *DailySummary, v any) { d.Fastest1MinuteWind = ptr(v.(float64)) }},
	{Code: "WSF2", Name: "fastest_2_minute_wind", Type: TypeReal, assign: func(d *DailySummary, v any) { d.Fastest2MinuteWind = ptr(v.(float64)) }},
	{Code: "WSF5", Name: "fastest_5_second_wind", Type: TypeReal, assign: func(d *DailySummary, v any) { d.Fastest5SecondWind = ptr(v.(float64)) }},
	{Code: "WSFG", Name: "peak_gust", Type: TypeReal, assign: func(d *DailySummary, v any) { d.PeakGust = ptr(v.(float64)) }},
	{Code: "WSFM", Name: "fastest_mile_wind", Type: TypeReal, assign: func(d *DailySummary, v any) { d.FastestMileWind = ptr(v.(float64)) }},
	{Code: "RHAV", Name: "avg_relative_humidity", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.AvgRelativeHumidity = ptr(v.(int)) }},
	{Code: "RHMN", Name: "min_relative_humidity", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.MinRelativeHumidity = ptr(v.(int)) }},
	{Code: "RHMX", Name: "max_relative_humidity", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.MaxRelativeHumidity = ptr(v.(int)) }},
	{Code: "ASLP", Name: "avg_sea_level_pressure", Type: TypeReal, assign: func(d *DailySummary, v any) { d.AvgSeaLevelPressure = ptr(v.(float64)) }},
	{Code: "ASTP", Name: "avg_station_pressure", Type: TypeReal, assign: func(d *DailySummary, v any) { d.AvgStationPressure = ptr(v.(float64)) }},
	{Code: "ADPT", Name: "avg_dew_point_temperature", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.AvgDewPointTemperature = ptr(v.(int)) }},
	{Code: "AWBT", Name: "avg_wet_bulb_temperature", Type: TypeInteger, assign: func(d *DailySummary, v any) { d.AvgWetBulbTemperature = ptr(v.(int)) }},
}

var (
	fieldsByCode = make(map[string]*Field, len(Schema))
	fieldsByName = make(map[string]*Field, len(Schema))
)

func init() {
	for i := range Schema {
		f := &Schema[i]
		fieldsByCode[f.Code] = f
		fieldsByName[f.Name] = f
	}
}

// FieldByCode looks up a schema field by its upstream category code.
func FieldByCode(code string) (*Field, bool) {
	f, ok := fieldsByCode[code]
	return f, ok
}

// FieldByName looks up a schema field by its descriptive name.
func FieldByName(name string) (*Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}
