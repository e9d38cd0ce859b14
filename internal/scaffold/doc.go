// Package scaffold materializes a planned layout on a filesystem. It powers
// the "dashgen generate" and "dashgen verify" commands: Generate creates every
// missing directory and zero-length placeholder file in order, skipping what
// already exists, and halts on the first failure without cleaning up. Verify
// checks an existing tree against the same layout without modifying it.
package scaffold
