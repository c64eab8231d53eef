package prodlister

import (
	"regexp"
	"strconv"
	"strings"
)

// priceRE matches the first integer-or-decimal numeric run in a price
// string, tolerating thousands separators: "1,079", "119.00", "1,299.50".
var priceRE = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// ParsePrice extracts a numeric amount from free-form price text such as
// "₹1,299.50" or "List Price: AED 219.41". The first numeric run wins and
// thousands separators are stripped. The second return value is false when
// the text contains no parseable amount ("Contact us").
func ParsePrice(s string) (float64, bool) {
	found := priceRE.FindString(s)
	if found == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(found, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
