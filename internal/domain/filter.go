package domain

// AllTime is the filter value that applies no lower time bound.
const AllTime = 0

// FilterOption is one entry of the age filter offered to the user.
type FilterOption struct {
	// Label is the human readable name shown in the selector.
	Label string

	// Days is the maximum quote age in days. Zero means no bound.
	Days int
}

var filterOptions = [...]FilterOption{
	{Label: "Last week", Days: 7},
	{Label: "Last month", Days: 30},
	{Label: "Last year", Days: 365},
	{Label: "All time", Days: AllTime},
}

// FilterOptions returns the fixed set of age filters in display order.
func FilterOptions() []FilterOption {
	opts := make([]FilterOption, len(filterOptions))
	copy(opts, filterOptions[:])

	return opts
}

// LookupFilter returns the option whose Days equals days.
func LookupFilter(days int) (FilterOption, bool) {
	for _, opt := range filterOptions {
		if opt.Days == days {
			return opt, true
		}
	}

	return FilterOption{}, false
}

// ValidateFilter returns a ValidationError when days is not an offered option.
func ValidateFilter(days int) error {
	if _, ok := LookupFilter(days); !ok {
		return NewValidationErrorWithValue("max_age_days", "must be one of 7, 30, 365 or 0", days)
	}

	return nil
}
