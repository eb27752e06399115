// Package types defines the value entities of the ocean model (crabs,
// colors, diets, prey and reefs), the CLI configuration and the standard
// error values shared by the ocean and scenario packages.
package types
