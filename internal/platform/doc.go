package platform

// Package platform contains OS integration glue: filesystem helpers,
// data-directory discovery, and opening unit article URLs in the system
// browser.
