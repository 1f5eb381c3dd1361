// Package finding defines the validation outcome model shared by every
// formstate component: a Finding is one raw validation result attached to a
// field, classified as blocking or non-blocking by kind prefix and
// deduplicated by (kind, message) identity before display.
package finding
