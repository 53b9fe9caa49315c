// Package config provides configuration loading, merging, and validation
// facilities for the SDK.
//
// Configuration is assembled from two sources: environment variables and the
// library defaults. Environment values take priority; defaults fill whatever
// the environment leaves unset.
//
// The main entry point is [GetClientConfig].
package config
