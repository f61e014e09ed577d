package engine

import "sort"

// rank orders diagnoses by descending score; equal scores fall back to
// ascending cause, so the final order never depends on rule declaration
// order.
func rank(ds []Diagnosis) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Score != ds[j].Score {
			return ds[i].Score > ds[j].Score
		}
		return ds[i].Cause < ds[j].Cause
	})
}
