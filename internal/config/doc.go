// Package config loads the optional HCL profile file. A profile names the
// database to read workflow definitions from and may set defaults for the
// graph to load; command-line flags always win over profile values.
package config
