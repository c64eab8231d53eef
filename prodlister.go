// Package prodlister normalizes product listings from heterogeneous
// e-commerce storefronts into a single canonical record shape and renders
// the result as a formatted spreadsheet report. Three source adapters are
// supported: a paginated WooCommerce-style catalogue, a Shopify-style
// sitemap+API catalogue, and an arbitrary page described by caller-supplied
// CSS selectors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, xlsx/) or their concern
// (scrape/).
package prodlister
