// Package agent is the conversational entry point of orderdesk.
//
// An Agent asks the natural-language collaborator for a draft answer, then hands the user
// message and the draft to the order-resolution pipeline, which keeps or overrides the draft.
// The Agent never fails: unexpected errors and panics become a generic apology.
package agent
