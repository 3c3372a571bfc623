// Package geocode resolves vague camp location text into verified street
// addresses using the Nominatim free-text search API.
//
// Resolution is best effort and deliberately conservative: results are
// filtered to the US and to Vermont, then to the row's expected city, and a
// complete "house number + road" address is preferred over the provider's
// display string. Rows that already carry a street address are never
// re-queried. Every network call is followed by a fixed delay to respect
// Nominatim's usage policy.
package geocode
