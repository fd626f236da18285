package repo

import (
	"fmt"
	"strings"

	"github.com/akerr/qit/ginternals"
	"golang.org/x/xerrors"
)

// Log walks the commit graph starting at start, following parent links
// breadth-first, and renders it as a Graphviz `digraph` description: one
// node per commit (labeled with its short hash and first message line)
// and one edge per parent link.
//
// Traversal is iterative (a worklist plus a seen-set) rather than
// recursive, so a long or merge-heavy history can't blow the stack.
func (r *Repository) Log(start ginternals.Oid) (string, error) {
	var b strings.Builder
	b.WriteString("digraph qitlog {\n")

	seen := map[ginternals.Oid]bool{}
	queue := []ginternals.Oid{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true

		c, err := r.GetCommit(id)
		if err != nil {
			return "", xerrors.Errorf("could not read commit %s: %w", id, err)
		}

		fmt.Fprintf(&b, "  %q [label=%q]\n", id.String()[:8], firstLine(c.Message()))
		for _, parent := range c.ParentIDs() {
			fmt.Fprintf(&b, "  %q -> %q\n", id.String()[:8], parent.String()[:8])
			queue = append(queue, parent)
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i != -1 {
		return msg[:i]
	}
	return msg
}
