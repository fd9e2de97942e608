//go:build !lvpathdebug

package dijkstra

// debugAssertions gates precondition checks; see assert_debug.go.
const debugAssertions = false
