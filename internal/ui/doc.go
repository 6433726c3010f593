package ui

// Package ui contains the Fyne-based desktop user interface: the faction
// toolbar, the browser views (faction roster, unit details, search,
// comparison), the settings dialog, and the theme driven by the persisted
// settings. All state is touched from the UI thread only.
