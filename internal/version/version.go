package version

// AppVersion is the termctl release version. Overridden at build time via
// -ldflags "-X termctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
