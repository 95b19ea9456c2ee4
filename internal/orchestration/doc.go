// Package orchestration runs the selected reducers over one input and checks
// that their results agree. It talks to the presentation layer only through
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
