// Package ocean implements the habitat ownership model: a Beach owns its
// crabs and one ClanSystem, a ClanSystem indexes crabs by name without
// owning them, and an Ocean owns beaches while sharing the reefs it
// generates with its callers.
//
// Index faults (out-of-range crab, beach or reef indices) panic with an
// error wrapping types.ErrIndexOutOfRange. Domain failures, such as a clan
// contest between clans with no members, are returned as errors.
package ocean

// Version is the release version of the ocean module.
const Version = "0.1.0"
