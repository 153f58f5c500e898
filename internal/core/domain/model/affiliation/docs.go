// Package affiliation holds the aggregate binding couriers to
// establishments. An affiliation starts as a Pending request, is decided
// once by the establishment, and thereafter tracks the courier's working
// state (Resting, Active, Delivering) plus the time of the last completed
// delivery, which the assignment engine uses to order couriers fairly.
package affiliation
