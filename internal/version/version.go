package version

// Version is the release version stamped into --version output.
const Version = "0.2.0"
