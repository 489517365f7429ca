// Package domain models NCEI GHCN-Daily summary data.
//
// # Data Source
//
// Daily summaries come from NOAA's National Centers for Environmental
// Information (NCEI) Access Data Service, dataset "daily-summaries":
// https://www.ncei.noaa.gov/access. One request covers a single station and
// an inclusive date range; the service responds with a JSON array of flat
// objects, one per day, every value encoded as a string.
//
// # GHCN-Daily Conventions
//
// Category codes:
//
//	Each column is identified by a terse category code: TMAX (maximum
//	temperature), PRCP (precipitation), PGTM (peak gust time), WT01..WT22
//	(weather-type flags), WV01..WV20 (weather-in-vicinity flags), and so on.
//	The code set for a given response varies by station and day; only the
//	categories the station actually reported appear. The full set this
//	package understands is defined in [Schema].
//
// Weather-type flags:
//
//	WT* and WV* columns are boolean occurrence flags. The service emits
//	"1" when the phenomenon was observed and omits the column entirely
//	otherwise, so an absent flag means "did not occur", not "unknown".
//	No other truthy spelling exists in the dataset.
//
// Time encoding:
//
//	FMTM and PGTM encode a time of day as a fixed-width digit string with
//	no separator and no seconds: the first three characters are the hour,
//	the last two the minute, e.g. "01230" = 12:30. The three-character
//	hour field exists because of a leading zero in the upstream fixed-width
//	layout; "023" parses to hour 23. Decoded by [parseClockTime], which
//	preserves this exact slicing and rejects out-of-range results.
//
// Units:
//
//	The service converts numeric columns server-side according to the
//	"units" request parameter: "standard" (imperial) or "metric". The
//	column set and encodings are identical either way, so coercion is
//	units-agnostic.
//
// # Pipeline
//
// Raw rows flow through two pure stages: [TranslateAndCoerce] maps category
// codes to descriptive field names and parses string values into their
// declared types, then [Normalize] projects each partial record onto the
// full schema so every [DailySummary] carries the complete field set with
// nil pointers marking unreported values and false for absent flags.
package domain
