// Package videoid derives YouTube video identifiers from user-supplied URL
// strings.
//
// Recognition is an ordered list of structural matchers over a parsed URL
// (host plus path/query shape), not substring slicing, so new shapes can be
// added in one place and tested in isolation. Parsing is pure: no network
// access, no side effects, and identical input always yields an identical
// identifier.
package videoid
