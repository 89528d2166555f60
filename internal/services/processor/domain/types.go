// Package domain defines the core types and interfaces for the processor service
package domain

// Answer is the outcome of evaluating one inbound message
// an empty Text means no job fired and nothing should be sent
type Answer struct {
	JobID string
	Text  string
}

// None reports whether the answer carries no response
func (a Answer) None() bool { return a.Text == "" }
