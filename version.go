package najia

// Version is the release of the engine, stamped at build time with
// -ldflags "-X github.com/aretw0/najia.Version=v1.2.3".
var Version = "dev"
