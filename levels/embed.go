package levels

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Load returns the raw bytes of an embedded level. The .json extension is
// optional.
func Load(name string) ([]byte, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := LevelsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}
