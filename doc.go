// Package rentals provides the types and functions to compare candidate rental
// properties around a university campus. It is designed to be local-first: the
// whole collection lives in a single human-readable slot that the user owns.
//
// The core functionalities include:
//   - Property records: the attributes recorded for each candidate residence
//     (rent, ride-hailing prices, safety, access to the campus and the city
//     center, personal ratings) with their validation rules.
//   - Collection store: the ordered list of properties, loaded once and
//     written back in full after every mutation.
//   - Persistence: a versioned text encoding of the collection, validated
//     against a JSON schema, with migration from the legacy unversioned format.
//   - Analytics: statistics, combined scores, the cost-vs-quality chart,
//     sorting and filtering, all recomputed on demand.
//
// This package serves as the foundational logic for the `rnt` command-line
// tool and its local HTTP API.
package rentals
