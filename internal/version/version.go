// internal/version/version.go
package version

// Version is the released seqfilter version.
const Version = "0.1.0"
