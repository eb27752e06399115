package scenario

import _ "embed"

// Sample is the scenario written by "ocean init".
//
//go:embed sample.yaml
var Sample []byte
