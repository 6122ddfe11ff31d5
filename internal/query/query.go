// Package query derives filtered views and aggregate counts from a
// repository read. All functions are pure: they never touch storage and they
// keep the relative order of their input.
package query

import (
	"strings"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
)

// StatusAll is the filter value matching every status.
const StatusAll = "all"

// Search returns the records whose company, position, or portal contains
// term. Matching ignores case and diacritics. An empty term matches
// everything and returns the input as-is.
func Search(records []models.ApplicationRecord, term string) []models.ApplicationRecord {
	if term == "" {
		return records
	}

	needle := normalizeText(term)
	var matched []models.ApplicationRecord
	for _, rec := range records {
		if strings.Contains(normalizeText(rec.Company), needle) ||
			strings.Contains(normalizeText(rec.Position), needle) ||
			strings.Contains(normalizeText(string(rec.Portal)), needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// FilterByStatus returns the records with exactly the given status, or the
// input as-is for StatusAll.
func FilterByStatus(records []models.ApplicationRecord, status string) []models.ApplicationRecord {
	if status == StatusAll {
		return records
	}

	var matched []models.ApplicationRecord
	for _, rec := range records {
		if string(rec.Status) == status {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Combine keeps the records passing both the search term and the status
// filter.
func Combine(records []models.ApplicationRecord, term, status string) []models.ApplicationRecord {
	return FilterByStatus(Search(records, term), status)
}

// Stats are the dashboard counters derived from one collection read.
// Interviews covers both interview statuses as a single bucket.
type Stats struct {
	Total      int
	Applied    int
	Interviews int
	Offers     int
}

// Summarize counts the dashboard stats for records.
func Summarize(records []models.ApplicationRecord) Stats {
	s := Stats{Total: len(records)}
	for _, rec := range records {
		switch {
		case rec.Status == models.StatusApplied:
			s.Applied++
		case strings.Contains(string(rec.Status), "Interview"):
			s.Interviews++
		case rec.Status == models.StatusOfferReceived:
			s.Offers++
		}
	}
	return s
}
