package model

import "strings"

// Visit is called for each element in pre-order. Returning false skips the
// element's subtree.
type Visit func(el Element, depth int, path string) bool

// Walk traverses roots depth-first in pre-order, parents before their own
// children and siblings in host order. The path is a dot-joined breadcrumb of
// object names, using <ClassName> for unnamed elements.
func Walk(roots []Element, visit Visit) {
	for _, root := range roots {
		walk(root, 0, "", visit)
	}
}

func walk(el Element, depth int, parentPath string, visit Visit) {
	if el == nil {
		return
	}
	currentPath := pathSegment(el)
	if parentPath != "" {
		currentPath = parentPath + "." + currentPath
	}
	if !visit(el, depth, currentPath) {
		return
	}
	for _, child := range el.Children() {
		walk(child, depth+1, currentPath, visit)
	}
}

// FindFirst returns the first element in traversal order satisfying pred.
func FindFirst(roots []Element, pred func(Element) bool) Element {
	var found Element
	Walk(roots, func(el Element, _ int, _ string) bool {
		if found != nil {
			return false
		}
		if pred(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// PathOf rebuilds the breadcrumb for el by walking up its parents.
func PathOf(el Element) string {
	var parts []string
	for ; el != nil; el = el.Parent() {
		parts = append(parts, pathSegment(el))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

func pathSegment(el Element) string {
	if name := el.ObjectName(); name != "" {
		return name
	}
	return "<" + el.ClassName() + ">"
}
