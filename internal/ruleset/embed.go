package ruleset

import (
	_ "embed"
	"fmt"
)

//go:embed default.yaml
var defaultPack []byte

// defaultSet is compiled once at startup; the embedded pack shipping
// broken is a build defect, not a runtime condition.
var defaultSet *RuleSet

func init() {
	rs, err := Parse(defaultPack)
	if err != nil {
		panic(fmt.Sprintf("ruleset: embedded default pack invalid: %v", err))
	}
	defaultSet = rs
}

// Default returns the rule pack embedded in the binary.
func Default() *RuleSet { return defaultSet }
