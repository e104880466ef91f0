package options

// SelectedOptions resolves the option-value selections implied by the
// variant addressed in the request. It scans the normalized variant list for
// the first view matching requestedID and maps each of its option entries'
// option id to the value id that variant pins for it.
//
// A requestedID below 1 (the sanitizer's signal for an absent or malformed
// variant_id parameter) or an id matching no variant yields an empty map;
// there is no error path.
func SelectedOptions(requestedID int64, views []VariantView) map[int64]int64 {
	if requestedID < 1 {
		return map[int64]int64{}
	}
	for _, view := range views {
		if view.VariantID != requestedID {
			continue
		}
		selected := make(map[int64]int64, len(view.Options))
		for _, ov := range view.Options {
			selected[ov.OptionID] = ov.ID
		}
		return selected
	}
	return map[int64]int64{}
}
