// Package yelpcamp is the root of the YelpCamp service module. It only carries
// assets that have to be embedded from the repository root.
package yelpcamp

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
