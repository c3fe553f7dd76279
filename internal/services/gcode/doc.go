// Package gcode turns a validated project into the drilling instruction
// stream. Generation is all-or-nothing: any invalid expression aborts before
// a single line is emitted.
package gcode
