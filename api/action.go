// File: api/action.go
// Package api defines the action verbs dispatched to ports.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Action verbs understood by the dispatch layer. Backends may support
// any subset; the dispatcher itself only gives Read special
// post-processing.
const (
	ActionOpen   Word = "open"
	ActionClose  Word = "close"
	ActionRead   Word = "read"
	ActionWrite  Word = "write"
	ActionQuery  Word = "query"
	ActionUpdate Word = "update"
	ActionCopy   Word = "copy"
)
