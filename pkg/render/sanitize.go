package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// HintPolicy returns the policy applied to hint markup before it is inserted
// unescaped into templates. Only the advice wrapper and line breaks survive.
func HintPolicy() *bluemonday.Policy {
	hintPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("div", "br", "p")
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("div", "p")
		hintPolicy = policy
	})
	return hintPolicy
}
