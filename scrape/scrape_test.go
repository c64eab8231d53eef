package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	prodlister "github.com/Plug0007/prod-lister"
	"github.com/Plug0007/prod-lister/scrape"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	price := 19.99
	catalog := func() *prodlister.Catalog {
		return &prodlister.Catalog{Products: []prodlister.Product{
			{Category: "Shirts", Name: "Blue Tee", Price: &price, URL: "https://s.example.com/p/a", Image: "https://s.example.com/a.jpg"},
			{Category: "Mugs", Name: "Red Mug", URL: "https://s.example.com/p/b"},
		}}
	}

	t.Run("same catalog hashes identically", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, scrape.Fingerprint(catalog()), scrape.Fingerprint(catalog()))
	})

	t.Run("order matters", func(t *testing.T) {
		t.Parallel()

		reversed := catalog()
		reversed.Products[0], reversed.Products[1] = reversed.Products[1], reversed.Products[0]
		assert.NotEqual(t, scrape.Fingerprint(catalog()), scrape.Fingerprint(reversed))
	})

	t.Run("absent and zero prices hash differently", func(t *testing.T) {
		t.Parallel()

		zero := 0.0
		withZero := catalog()
		withZero.Products[1].Price = &zero
		assert.NotEqual(t, scrape.Fingerprint(catalog()), scrape.Fingerprint(withZero))
	})

	t.Run("field boundaries do not collide", func(t *testing.T) {
		t.Parallel()

		a := &prodlister.Catalog{Products: []prodlister.Product{{Category: "ab", Name: "c", URL: "https://x/p"}}}
		b := &prodlister.Catalog{Products: []prodlister.Product{{Category: "a", Name: "bc", URL: "https://x/p"}}}
		assert.NotEqual(t, scrape.Fingerprint(a), scrape.Fingerprint(b))
	})
}
