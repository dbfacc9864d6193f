package platform

// Package platform contains OS integration: the user's Downloads directory,
// destination folder validation, and opening folders in the file manager.
