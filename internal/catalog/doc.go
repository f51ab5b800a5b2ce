// Package catalog holds the static metadata the front-end renders: the
// curated Volatility plugin sections for both tool generations, and the
// privacy categories with their masking rules for minimizing exposure of
// data unrelated to an investigation.
package catalog
