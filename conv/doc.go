// Package conv provides value coercion between compatible native representations.
// It covers primitives with culture aware text, enums by name or underlying value,
// well known bridges (time, identifiers, URIs, durations, versions, bytes, type references),
// arbitrary precision integers and pluggable type adapters.
package conv
