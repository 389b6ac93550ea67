// Package shell renders shell integration code for fish, zsh and bash.
// The generated functions call back into the jumpr binary for the prompt
// path, repository lookup and completion.
package shell
