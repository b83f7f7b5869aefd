package dictionary

import _ "embed"

//go:embed data/sample.yaml
var sampleYAML []byte
