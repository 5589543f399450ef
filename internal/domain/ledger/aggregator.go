package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CarryForwardMarker is appended to labels of entries carried in from a prior
// financial year. Marked entries count toward totals but are not navigable to
// a source record.
const CarryForwardMarker = "(Carry-forward)"

// Entry is one raw line fed into a balance-sheet category.
type Entry struct {
	Label  string
	Amount decimal.Decimal
}

// ReportEntry is one aggregated line of a balance-sheet section.
type ReportEntry struct {
	Label       string
	Amount      decimal.Decimal
	Interactive bool // false for carry-forward entries
}

// Section is one category of the balance sheet with its entries and total.
type Section struct {
	Name    string
	Entries []ReportEntry
	Total   decimal.Decimal
}

// BalanceSheetReport is the aggregated balance sheet. Sections are ordered
// by name so repeated runs over the same input produce identical output.
type BalanceSheetReport struct {
	Sections []Section
}

// SectionByName returns the named section, or nil if the report has none.
func (r *BalanceSheetReport) SectionByName(name string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}

// Aggregate builds a balance-sheet report from category entries. Amounts are
// rounded half-up to 2 decimal places. Sections named Salary or Expense are
// merged into a single Expense section keyed by beneficiary name, with
// same-name entries summed.
func Aggregate(sections map[string][]Entry) *BalanceSheetReport {
	report := &BalanceSheetReport{}
	var expense []Entry

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if isExpenseSection(name) {
			expense = append(expense, sections[name]...)
			continue
		}
		report.Sections = append(report.Sections, buildSection(name, sections[name]))
	}

	if len(expense) > 0 {
		report.Sections = append(report.Sections, buildSection("Expense", mergeByLabel(expense)))
		sort.Slice(report.Sections, func(i, j int) bool {
			return report.Sections[i].Name < report.Sections[j].Name
		})
	}

	return report
}

func isExpenseSection(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "expense", "salary":
		return true
	}
	return false
}

// mergeByLabel sums entries sharing a label, preserving first-seen order.
func mergeByLabel(entries []Entry) []Entry {
	index := make(map[string]int)
	merged := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if i, ok := index[entry.Label]; ok {
			merged[i].Amount = merged[i].Amount.Add(entry.Amount)
			continue
		}
		index[entry.Label] = len(merged)
		merged = append(merged, entry)
	}
	return merged
}

func buildSection(name string, entries []Entry) Section {
	section := Section{
		Name:    name,
		Entries: make([]ReportEntry, 0, len(entries)),
		Total:   decimal.Zero,
	}
	for _, entry := range entries {
		amount := entry.Amount.Round(2)
		section.Entries = append(section.Entries, ReportEntry{
			Label:       entry.Label,
			Amount:      amount,
			Interactive: !strings.Contains(entry.Label, CarryForwardMarker),
		})
		section.Total = section.Total.Add(amount)
	}
	section.Total = section.Total.Round(2)
	return section
}
