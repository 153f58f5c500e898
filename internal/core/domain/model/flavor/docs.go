// Package flavor holds the menu-item aggregate: per-size prices, an
// availability flag, and the set of customers waiting to hear when an
// unavailable flavor comes back.
package flavor
