//go:build lvpathdebug

package dijkstra

// debugAssertions gates precondition checks. Enabled with -tags lvpathdebug.
const debugAssertions = true
