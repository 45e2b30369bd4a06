package version

// Version is overridden at build time with -ldflags "-X github.com/bnema/cave/internal/version.Version=...".
var Version = "dev"
