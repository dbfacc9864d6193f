package ui

// Package ui contains the Fyne-based desktop user interface. RootUI builds the
// window; Session holds the user's choices and relays download events to the
// widgets on the UI thread. All UI strings are localized via Localization.
