package domain

import (
	"sort"
	"strings"
)

// BuildDirectoryTree renders the included file list as an ASCII tree rooted
// at rootName. Directories sort before files, then by name.
//
// maxDepth counts path segments from root (1 = direct children); 0 means unlimited.
func BuildDirectoryTree(rootName string, relPaths []string, maxDepth int) string {
	if strings.TrimSpace(rootName) == "" {
		rootName = "."
	}

	type node struct {
		name     string
		children map[string]*node
		isFile   bool
	}

	root := &node{name: rootName, children: map[string]*node{}}

	insert := func(rel string) {
		rel = strings.TrimSpace(rel)
		if rel == "" {
			return
		}
		parts := strings.Split(rel, "/")
		cur := root
		for idx, p := range parts {
			if p == "" {
				continue
			}
			child := cur.children[p]
			if child == nil {
				child = &node{name: p, children: map[string]*node{}}
				cur.children[p] = child
			}
			cur = child
			if idx == len(parts)-1 {
				cur.isFile = true
			}
		}
	}

	for _, p := range relPaths {
		insert(p)
	}

	lines := []string{rootName}

	var walk func(n *node, depth int, prefix string)
	walk = func(n *node, depth int, prefix string) {
		if len(n.children) == 0 {
			return
		}

		names := make([]string, 0, len(n.children))
		for k := range n.children {
			names = append(names, k)
		}
		sort.Slice(names, func(i, j int) bool {
			iIsDir := !n.children[names[i]].isFile
			jIsDir := !n.children[names[j]].isFile
			if iIsDir != jIsDir {
				return iIsDir
			}
			return names[i] < names[j]
		})

		for idx, name := range names {
			child := n.children[name]
			branch := "├── "
			nextPrefix := prefix + "│   "
			if idx == len(names)-1 {
				branch = "└── "
				nextPrefix = prefix + "    "
			}

			label := child.name
			if !child.isFile {
				label += "/"
			}
			lines = append(lines, prefix+branch+label)

			if maxDepth == 0 || depth < maxDepth {
				walk(child, depth+1, nextPrefix)
			}
		}
	}

	walk(root, 1, "")
	return strings.Join(lines, "\n")
}
