// Package utils provides conversion helpers for loosely typed catalog values.
//
// Catalog trees decoded from KeyValues or JSON carry numbers and flags as strings,
// floats or booleans depending on the exporter; these helpers read them uniformly.
package utils
