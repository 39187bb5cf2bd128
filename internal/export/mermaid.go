package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/vhdldot/internal/hdl"
)

// GenerateMermaid produces a Mermaid graph LR flowchart of e. Ports get
// generated IDs so names that collide with Mermaid keywords still render.
func GenerateMermaid(e *hdl.Entity) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	entityID := "E"
	sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", entityID, e.Name))

	nextID := 0
	portID := func() string {
		id := fmt.Sprintf("P%d", nextID)
		nextID++
		return id
	}

	for _, p := range e.Inputs() {
		id := portID()
		sb.WriteString(fmt.Sprintf("  %s([\"%s\"]) --> %s\n", id, p.Name, entityID))
	}
	for _, p := range e.Outputs() {
		id := portID()
		sb.WriteString(fmt.Sprintf("  %s --> %s([\"%s\"])\n", entityID, id, p.Name))
	}

	return sb.String()
}
