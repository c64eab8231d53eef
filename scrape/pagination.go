package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pagerSelector locates a WooCommerce pager control: either the numbered
// page list or the pagination navigation landmark.
const pagerSelector = "ul.page-numbers, nav.woocommerce-pagination"

// LastPage determines the total page count from the pager control on a
// parsed first page. Every link whose label is purely numeric contributes;
// the maximum wins. Labels like "Next" or "→" are ignored. Returns 1 when
// no pager or no numeric label is found.
func LastPage(doc *goquery.Document) int {
	pager := doc.Find(pagerSelector).First()
	if pager.Length() == 0 {
		return 1
	}

	last := 1
	pager.Find("a").Each(func(_ int, a *goquery.Selection) {
		label := strings.TrimSpace(a.Text())
		if !isNumeric(label) {
			return
		}
		if n, err := strconv.Atoi(label); err == nil && n > last {
			last = n
		}
	})
	return last
}

// isNumeric reports whether s is a non-empty run of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
