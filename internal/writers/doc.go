// Package writers turns a finished run into serialized output.
//
// Design:
//   • Formats register in ResultWriters; appcore never switches on format.
//   • JSON goes through pkg/api (v1) for a stable wire format.
//   • A broken pipe on stdout is success, not an error.
package writers
