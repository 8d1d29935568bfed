// Package visitor offers callback based iteration over sequences, maps and
// index keyed dictionaries, plus an insert once concurrent map.
package visitor
