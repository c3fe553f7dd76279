// Package commands defines the spotdrill CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - new       Start an empty project file
//   - show      Print the project settings and point list
//   - add       Append a point to the end of the list
//   - insert    Insert a point before or after an existing row
//   - remove    Delete a row
//   - move      Move a row up or down
//   - set       Change units, coordinate mode, depth or plunge rate
//   - generate  Emit the G-code for the project
//
// # Implementation
//
// The root command builds the dependency graph (stores, session service,
// generator) and reads the defaults record before any subcommand runs, so
// handlers share one app context. Commands that omit the project file flag
// fall back to the recorded default data location; successful saves rewrite
// the record.
package commands
