package model

// Package model defines domain data structures used across the app: platforms
// and format options offered in the UI, the download configuration record,
// download requests, and the events a download worker reports back.
