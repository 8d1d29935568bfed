// Package resolver discovers data carrying members of a type and their external names.
//
// Strategies differ only in member filtering and naming: plain reflection,
// data contract tags, JSON tags and viant format tags. Every resolver caches
// member lists per type and names per (declaring type, member) and must not be
// used after Release.
package resolver
