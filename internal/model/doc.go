package model

// Package model defines domain data structures used across the app: unit
// records, infobox attributes, search items, and the user's comparison
// selection. Records are immutable after the catalog is loaded and are
// shared by reference.
