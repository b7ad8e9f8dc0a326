package service

import "github.com/MKhiriev/go-inventory-keeper/models"

// ApplyOverlay returns the view of category that results from laying the
// pending outbox entries over the base records:
//
//  1. records with a pending delete are removed;
//  2. pending updates are shallow-merged onto the record with the same id,
//     keeping base order; updates whose target is missing are dropped;
//  3. pending creates are appended in sequence order.
//
// Entries of other categories are ignored. Neither base nor pending is
// modified and no id appears twice in the result.
func ApplyOverlay(category models.Category, base []models.Record, pending []models.OutboxEntry) []models.Record {
	out, _ := overlay(category, base, pending)
	return out
}

// overlay is [ApplyOverlay] that also reports how many updates had no
// target.
func overlay(category models.Category, base []models.Record, pending []models.OutboxEntry) ([]models.Record, int) {
	removed := make(map[string]struct{})
	for _, e := range pending {
		if e.Category == category && e.Method == models.MethodDelete {
			removed[e.ID] = struct{}{}
		}
	}

	out := make([]models.Record, 0, len(base))
	index := make(map[string]int, len(base))
	for _, rec := range base {
		id := rec.ID(category)
		if _, gone := removed[id]; gone && id != "" {
			continue
		}
		if id != "" {
			if _, dup := index[id]; dup {
				continue
			}
			index[id] = len(out)
		}
		out = append(out, rec)
	}

	conflicted := 0
	for _, e := range pending {
		if e.Category != category || e.Method != models.MethodUpdate {
			continue
		}
		i, ok := index[e.ID]
		if !ok {
			conflicted++
			continue
		}
		out[i] = out[i].Merge(e.Payload)
	}

	for _, e := range pending {
		if e.Category != category || e.Method != models.MethodCreate {
			continue
		}
		if _, gone := removed[e.ID]; gone {
			continue
		}
		rec := e.Payload.Clone()
		rec.SetID(category, e.ID)
		// a create carrying an id already in the base list replaces that
		// record in place
		if i, ok := index[e.ID]; ok {
			out[i] = out[i].Merge(rec)
			continue
		}
		index[e.ID] = len(out)
		out = append(out, rec)
	}

	return out, conflicted
}
