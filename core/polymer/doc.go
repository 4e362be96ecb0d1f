// Package polymer grows a chain of elements with pair-insertion rules and
// reports element frequency statistics. It never imports the CLI packages;
// keep it domain-only.
//
// Polymerizer materializes the chain every step (length roughly doubles);
// Tally keeps pair counts instead and must agree with it on every answer.
package polymer
