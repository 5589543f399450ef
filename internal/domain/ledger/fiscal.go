package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// EarliestFinancialYear is the first year the application tracks.
const EarliestFinancialYear = 2022

var financialYearPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// FinancialYear is an April-to-March accounting year identified by the
// calendar year it starts in.
type FinancialYear struct {
	StartYear int
}

// Label formats the year as "YYYY-YYYY", e.g. "2024-2025".
func (fy FinancialYear) Label() string {
	return fmt.Sprintf("%d-%d", fy.StartYear, fy.StartYear+1)
}

// Start returns April 1 of the start year.
func (fy FinancialYear) Start() time.Time {
	return time.Date(fy.StartYear, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End returns March 31 of the following year.
func (fy FinancialYear) End() time.Time {
	return time.Date(fy.StartYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date falls inside the financial year.
func (fy FinancialYear) Contains(date time.Time) bool {
	return ResolveFinancialYear(date).StartYear == fy.StartYear
}

// Previous returns the financial year immediately before this one.
func (fy FinancialYear) Previous() FinancialYear {
	return FinancialYear{StartYear: fy.StartYear - 1}
}

// ResolveFinancialYear maps a date to its financial year: dates from April
// onward belong to the year starting that April, earlier dates to the year
// that started the previous April.
func ResolveFinancialYear(date time.Time) FinancialYear {
	if date.Month() >= time.April {
		return FinancialYear{StartYear: date.Year()}
	}
	return FinancialYear{StartYear: date.Year() - 1}
}

// EnumerateFinancialYears lists financial years from startYear through
// endYear inclusive, oldest first.
func EnumerateFinancialYears(startYear, endYear int) []FinancialYear {
	if endYear < startYear {
		return nil
	}
	years := make([]FinancialYear, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		years = append(years, FinancialYear{StartYear: y})
	}
	return years
}

// ParseFinancialYear validates a "YYYY-YYYY" label where the second year is
// the first plus one, and returns the parsed financial year.
func ParseFinancialYear(label string) (FinancialYear, error) {
	matches := financialYearPattern.FindStringSubmatch(label)
	if matches == nil {
		return FinancialYear{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidFinancialYear,
			fmt.Sprintf("financial year %q does not match YYYY-YYYY", label),
			domainerror.ErrInvalidFinancialYear,
		)
	}

	first, _ := strconv.Atoi(matches[1])
	second, _ := strconv.Atoi(matches[2])
	if second != first+1 {
		return FinancialYear{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidFinancialYear,
			fmt.Sprintf("financial year %q must span consecutive years", label),
			domainerror.ErrInvalidFinancialYear,
		)
	}

	return FinancialYear{StartYear: first}, nil
}
