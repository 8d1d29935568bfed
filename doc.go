// Package dictology converts typed values to a string keyed dictionary form and back.
//
// Structs become maps keyed by member name, sequences become maps keyed "0".."n-1",
// and well known types such as time.Time, time.Duration, types.Version or uuid.UUID
// are handled by converters. Member discovery and naming is delegated to a resolver
// and leaf values are coerced with the conv package.
//
//	dictionary, err := dictology.ToDictionary(order, nil)
//	restored, err := dictology.ToInstance[Order](dictionary, nil)
package dictology
