package version

// Version is the release string stamped into --version output.
const Version = "0.1.0"
