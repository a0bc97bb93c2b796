// Package magetasks holds the build, test, and lint tasks behind the
// Magefile. The orchestrated pipeline shells out through rig's own console,
// so a release build doubles as a smoke test of the install surfaces.
package magetasks
