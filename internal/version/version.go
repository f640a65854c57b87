package version

// Version is overridden at build time with
// -ldflags "-X github.com/bnema/boxtools-cli/internal/version.Version=...".
var Version = "dev"
