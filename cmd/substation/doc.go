// Command substation is the CLI for inspecting, converting, and indexing
// ASS/SSA subtitle scripts.
package main
