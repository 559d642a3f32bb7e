// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime-mutable filter state for snapshot consumers.
//
// A FilterStore holds the active directive string and its compiled form,
// lets any goroutine swap it atomically, and notifies registered
// listeners so an interactive surface can re-filter its view.
package control
