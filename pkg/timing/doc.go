// Package timing computes the calendar-relative annotations of a hexagram:
// seasonal strength and clash under the month branch, void branches and the
// six spirits under the day pillar.
//
// Calendar strings usually come from outside the process, so unknown stems
// or branches never raise: they yield an empty result instead.
package timing
