package dashboard

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Entry is one spend amount attributed to a date and category.
type Entry struct {
	Date        string
	Amount      float64
	Category    string
	Subcategory string
}

// Row is one slice of the spending donut.
type Row struct {
	Name  string
	Value float64
}

var ymdRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseYMD accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the UTC
// calendar date.
func ParseYMD(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	if ymdRe.MatchString(s) {
		return s, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02"), true
		}
	}
	return "", false
}

func label(v any, fallback string) string {
	s := strings.TrimSpace(text(v))
	if s == "" {
		return fallback
	}
	return s
}

// ReceiptsToEntries turns receipts into spend entries. A receipt with items
// yields one entry per item (price times quantity, quantity defaulting to
// 1); a receipt without items yields one entry for its total. Receipts with
// no usable date and entries with a non-positive amount are dropped.
func ReceiptsToEntries(receipts []map[string]any) []Entry {
	out := []Entry{}
	for _, r := range receipts {
		date, ok := ParseYMD(firstTruthy(nil, r["date"], r["purchaseDate"], r["createdAt"]))
		if !ok {
			continue
		}

		if items, _ := array(r["items"]); len(items) > 0 {
			for _, i := range items {
				it, _ := i.(map[string]any)
				if it == nil {
					it = map[string]any{}
				}
				qty := number(firstPresent(1.0, it["quantity"]))
				if qty == 0 {
					qty = 1
				}
				price := number(firstPresent(0.0, it["price"], it["amount"], it["cost"]))
				amount := price * qty
				if amount <= 0 {
					continue
				}
				out = append(out, Entry{
					Date:        date,
					Amount:      amount,
					Category:    label(firstPresent("Other", it["category"], r["category"]), "Other"),
					Subcategory: label(firstPresent("", it["subcategory"], it["subCategory"], it["type"]), ""),
				})
			}
			continue
		}

		amount := number(firstPresent(0.0, r["total"], r["amount"], r["cost"]))
		if amount <= 0 {
			continue
		}
		out = append(out, Entry{
			Date:        date,
			Amount:      amount,
			Category:    label(firstPresent("Other", r["category"]), "Other"),
			Subcategory: label(firstPresent("", r["subcategory"], r["subCategory"], r["type"], r["store"]), ""),
		})
	}
	return out
}

// ReceiptTotal sums the receipt totals, counting unparsable totals as 0.
func ReceiptTotal(receipts []map[string]any) float64 {
	t := 0.0
	for _, r := range receipts {
		t += number(r["total"])
	}
	return t
}

// MonthRange returns the first day of the month and the first day of the
// following month (exclusive end).
func MonthRange(year int, month time.Month) (start, end string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), first.AddDate(0, 1, 0).Format("2006-01-02")
}

// FilterRange keeps entries dated in [start, end).
func FilterRange(entries []Entry, start, end string) []Entry {
	out := []Entry{}
	for _, e := range entries {
		if e.Date >= start && e.Date < end {
			out = append(out, e)
		}
	}
	return out
}

func IsMortgage(cat string) bool {
	return strings.Contains(strings.ToLower(cat), "mortgage")
}

func IsUtilities(cat string) bool {
	c := strings.ToLower(cat)
	for _, s := range []string{"utilit", "electric", "gas", "water", "internet"} {
		if strings.Contains(c, s) {
			return true
		}
	}
	return false
}

func IsGroceries(cat string) bool {
	return strings.Contains(strings.ToLower(cat), "groc")
}

// FinanceFilter mirrors the donut's tab and toggles.
type FinanceFilter struct {
	GroceriesOnly bool
	HideMortgage  bool
	HideUtilities bool
}

func (f FinanceFilter) Apply(entries []Entry) []Entry {
	out := []Entry{}
	for _, e := range entries {
		if f.GroceriesOnly && !IsGroceries(e.Category) && !IsGroceries(e.Subcategory) {
			continue
		}
		if f.HideMortgage && IsMortgage(e.Category) {
			continue
		}
		if f.HideUtilities && IsUtilities(e.Category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sumBy(entries []Entry, key func(Entry) string) []Row {
	idx := map[string]int{}
	var rows []Row
	for _, e := range entries {
		k := key(e)
		i, ok := idx[k]
		if !ok {
			i = len(rows)
			idx[k] = i
			rows = append(rows, Row{Name: k})
		}
		rows[i].Value += e.Amount
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}

// SumByCategory totals entries per category, largest first.
func SumByCategory(entries []Entry) []Row {
	return sumBy(entries, func(e Entry) string {
		if e.Category == "" {
			return "Other"
		}
		return e.Category
	})
}

// SumByGroceriesSubcategory totals entries per subcategory, largest first.
func SumByGroceriesSubcategory(entries []Entry) []Row {
	return sumBy(entries, func(e Entry) string {
		if e.Subcategory == "" {
			return "Groceries"
		}
		return e.Subcategory
	})
}

// Total sums the row values.
func Total(rows []Row) float64 {
	t := 0.0
	for _, r := range rows {
		t += r.Value
	}
	return t
}
