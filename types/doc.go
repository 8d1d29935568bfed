// Package types defines well-known value types carried by the dictionary form:
// offset aware instants, dotted versions, calendar kinds, tick helpers and
// textual identifier layouts.
package types
