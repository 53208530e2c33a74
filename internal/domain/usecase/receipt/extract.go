package receipt

import (
	"regexp"
	"strings"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Fallbacks when nothing in the text matches.
const (
	uncategorized   = "Uncategorized"
	unknownMerchant = "Unknown"
)

var (
	amountLineRe = regexp.MustCompile(`(?i)(transaction amount|amount|total|net total|balance due|lkr|rs\.?)`)
	invoiceRe    = regexp.MustCompile(`(?i)invoice`)
	moneyRe      = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?`)
	allNumbersRe = regexp.MustCompile(`\d+(?:,\d{1,3})*(?:\.\d{1,2})?`)
)

// Keyword buckets tried after the default category names, in order.
var topicBuckets = []struct {
	re       *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)salary|payroll|income`), "Salary"},
	{regexp.MustCompile(`(?i)investment|dividend|stock|bond`), "Investments"},
	{regexp.MustCompile(`(?i)business|invoice|service`), "Business"},
	{regexp.MustCompile(`(?i)food|cafe|restaurant|coffee|meal|drink`), "Food"},
	{regexp.MustCompile(`(?i)shop|mall|clothes|shopping`), "Shopping"},
	{regexp.MustCompile(`(?i)fuel|gas|petrol|diesel`), "Fuel"},
	{regexp.MustCompile(`(?i)bill|utility|electric|water|internet`), "Bills"},
	{regexp.MustCompile(`(?i)entertainment|movie|cinema|theater|concert`), "Entertainment"},
}

// Income-type category names; everything else extracted here is an expense.
var incomeCategories = map[string]bool{
	"Salary":      true,
	"Business":    true,
	"Investments": true,
}

// extractAmount guesses the receipt total. Lines carrying a total/amount or
// currency marker win (unless they mention "invoice", which is usually an
// invoice number); otherwise the largest plausible number in the text is
// taken. Numbers longer than 9 digits are discarded as OCR noise.
func extractAmount(text string) string {
	for _, line := range splitLines(text) {
		if amountLineRe.MatchString(line) && !invoiceRe.MatchString(line) {
			if m := moneyRe.FindString(line); m != "" {
				if d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", "")); err == nil {
					return d.StringFixed(2)
				}
			}
		}
	}

	max := decimal.Zero
	found := false
	for _, m := range allNumbersRe.FindAllString(text, -1) {
		if len(m) > 9 {
			continue
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
		if err != nil {
			continue
		}
		if !found || d.GreaterThan(max) {
			max = d
			found = true
		}
	}
	if found {
		return max.StringFixed(2)
	}
	return "0.00"
}

// extractMerchant returns the first non-empty line of the receipt.
func extractMerchant(text string) string {
	for _, line := range splitLines(text) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return unknownMerchant
}

// extractCategory matches the text against the default category names first,
// then the broader topic buckets. Failure mode is a silently wrong guess.
func extractCategory(text string) (name string, catType entity.CategoryType) {
	lower := strings.ToLower(text)

	name = uncategorized
	for _, cat := range entity.DefaultCategories {
		if strings.Contains(lower, strings.ToLower(cat.Name)) {
			name = cat.Name
			break
		}
	}

	if name == uncategorized {
		for _, bucket := range topicBuckets {
			if bucket.re.MatchString(lower) {
				name = bucket.category
				break
			}
		}
	}

	if incomeCategories[name] {
		return name, entity.TypeIncome
	}
	return name, entity.TypeExpense
}

func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
}
