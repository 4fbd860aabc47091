// Package prompt answers content questions interactively in a terminal. Each
// question is asked through a Driver (survey by default) and the answers are
// coerced with the question's rule before they reach the data map.
package prompt
