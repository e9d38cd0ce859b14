// Package layout computes the directory and file skeleton of a Project Dash
// monorepo. Planning is a pure function of the root name, the service names,
// the library names, and the ecosystem profile; nothing here touches the
// filesystem. The scaffold package materializes a Layout on disk.
package layout
