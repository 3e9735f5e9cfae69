package dirtree

import "strings"

// IsValidPath reports whether path matches (/[a-z]{1,maxName})*/ and
// has total length in [1, maxPath]. "/" alone (the root) is valid.
func IsValidPath(path string, maxName, maxPath int) bool {
	if len(path) == 0 || len(path) > maxPath {
		return false
	}
	if path[0] != '/' || path[len(path)-1] != '/' {
		return false
	}
	if path == "/" {
		return true
	}

	for _, component := range strings.Split(path[1:len(path)-1], "/") {
		if !isValidComponent(component, maxName) {
			return false
		}
	}
	return true
}

func isValidComponent(name string, maxName int) bool {
	if len(name) == 0 || len(name) > maxName {
		return false
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// Components splits a valid path into its directory names, in order
// from the root. The root path "/" yields nil.
func Components(path string) []string {
	if path == "/" {
		return nil
	}
	return strings.Split(path[1:len(path)-1], "/")
}

// SplitHead returns the first component of path and the remainder of
// the path starting at the next "/". ok is false when path is "/",
// which has no head component.
func SplitHead(path string) (head, rest string, ok bool) {
	if path == "/" {
		return "", "", false
	}
	tail := path[1:]
	sep := strings.IndexByte(tail, '/')
	return tail[:sep], path[1+sep:], true
}

// SplitParent splits path into its parent directory's path and its own
// last component. ok is false when path is "/", which has no parent.
func SplitParent(path string) (parent, name string, ok bool) {
	if path == "/" {
		return "", "", false
	}
	sep := strings.LastIndexByte(path[:len(path)-1], '/')
	return path[:sep+1], path[sep+1 : len(path)-1], true
}

// LCA returns the lowest common ancestor path of p and q: the longest
// common prefix of the two that itself ends at a "/" boundary.
func LCA(p, q string) string {
	limit := len(p)
	if len(q) < limit {
		limit = len(q)
	}

	lastSlash := 0
	i := 0
	for i < limit && p[i] == q[i] {
		if p[i] == '/' {
			lastSlash = i + 1
		}
		i++
	}
	return p[:lastSlash]
}

// IsAncestor reports whether a is an ancestor of b, or equal to it.
func IsAncestor(a, b string) bool {
	return strings.HasPrefix(b, a)
}

// relativeComponents returns path's components below ancestor, which
// must be a valid ancestor-or-equal path of path. Returns nil when
// path equals ancestor.
func relativeComponents(ancestor, path string) []string {
	if path == ancestor {
		return nil
	}
	suffix := path[len(ancestor) : len(path)-1]
	return strings.Split(suffix, "/")
}
