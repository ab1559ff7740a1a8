package tui

import (
	"strings"

	"github.com/thenoetrevino/opserr/internal/store"
	"gopkg.in/yaml.v3"
)

// renderErrorSubstate dumps the branch of the store holding the error slot
// as YAML, or "empty" when that branch does not exist.
func renderErrorSubstate(snapshot store.Snapshot, substatePath string) string {
	branch, ok := snapshot.Branch(substatePath).Get()
	if !ok || branch.IsEmpty() {
		return "empty"
	}

	// Raw is a private copy, so errors can be replaced by their message in place
	raw := branch.Raw()
	describeErrors(raw)

	out, err := yaml.Marshal(raw)
	if err != nil {
		return err.Error()
	}
	return strings.TrimRight(string(out), "\n")
}

func describeErrors(node map[string]any) {
	for k, v := range node {
		switch v := v.(type) {
		case map[string]any:
			describeErrors(v)
		case error:
			node[k] = v.Error()
		}
	}
}
