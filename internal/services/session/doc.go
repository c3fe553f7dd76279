// Package session manages the lifetime of one open project: new, open,
// save, save-as, and the unit and coordinate-mode switches that rewrite
// existing expressions in place.
package session
