package domain

// Normalize projects each partial record onto the full schema, producing one
// DailySummary per input row. Fields the row reported keep their coerced
// values; everything else stays at its default (nil for measurements, false
// for occurrence flags), so every output record carries the complete field
// set no matter how sparse the source data was.
func Normalize(rows []Record) []DailySummary {
	out := make([]DailySummary, 0, len(rows))
	for _, rec := range rows {
		var s DailySummary
		for i := range Schema {
			f := &Schema[i]
			if v, ok := rec[f.Name]; ok {
				f.assign(&s, v)
			}
		}
		out = append(out, s)
	}
	return out
}
