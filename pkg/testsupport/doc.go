// Package testsupport holds the fixture and golden-file helpers shared by the
// package tests. Goldens live next to the tests under testdata/ and are
// refreshed with UPDATE_GOLDENS=1.
package testsupport
