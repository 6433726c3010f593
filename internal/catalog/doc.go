package catalog

// Package catalog loads unit records from the on-disk data tree and serves
// them to the rest of the app. It owns the faction hierarchy configuration,
// the directory-walking loader with base-faction inheritance, the lookup
// facade, and the flat search index. Everything is built once at startup and
// read-only afterwards.
