package detect

import _ "embed"

// embeddedDictionary is the default first-name dictionary, bundled so the
// detector works with no configuration.
//
//go:embed firstnames.txt
var embeddedDictionary string
