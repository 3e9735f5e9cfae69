package dirtree

import "go.uber.org/zap"

// List returns the comma-joined, lexicographically sorted names of
// path's immediate children, or an error if path is malformed or does
// not exist. The empty string is returned (with a nil error) for an
// existing, empty directory.
func (t *Tree) List(path string) (string, error) {
	if !IsValidPath(path, t.maxName, t.maxPath) {
		return "", wrapPath(ErrInvalidArgument, path)
	}

	target, touched, err := descend(t.root, false, modeReader, Components(path), modeReader)
	if err != nil {
		unwind(touched)
		return "", wrapPath(ErrNotFound, path)
	}

	target.mu.Lock()
	result := listChildren(target.children)
	target.mu.Unlock()

	unwind(touched)
	target.unlockReader()

	t.logger.Debug("list", zap.String("path", path))
	return result, nil
}

// Create adds an empty directory at path. The root always exists, so
// Create("/") reports ErrExists.
func (t *Tree) Create(path string) error {
	if !IsValidPath(path, t.maxName, t.maxPath) {
		return wrapPath(ErrInvalidArgument, path)
	}
	if path == "/" {
		return wrapPath(ErrExists, path)
	}

	parentPath, name, _ := SplitParent(path)

	parent, touched, err := descend(t.root, false, modeReader, Components(parentPath), modeWriter)
	if err != nil {
		unwind(touched)
		return wrapPath(ErrNotFound, parentPath)
	}

	parent.mu.Lock()
	if _, exists := parent.children.get(name); exists {
		parent.mu.Unlock()
		unwind(touched)
		parent.unlockWriter()
		return wrapPath(ErrExists, path)
	}
	parent.children.insert(name, newNode(parent, name))
	parent.mu.Unlock()

	unwind(touched)
	parent.unlockWriter()

	t.logger.Info("create", zap.String("path", path))
	return nil
}

// Remove deletes the empty directory at path. The root can never be
// removed, and a non-empty directory reports ErrNotEmpty.
func (t *Tree) Remove(path string) error {
	if path == "/" {
		return wrapPath(ErrBusy, path)
	}
	if !IsValidPath(path, t.maxName, t.maxPath) {
		return wrapPath(ErrInvalidArgument, path)
	}

	parentPath, name, _ := SplitParent(path)

	parent, touched, err := descend(t.root, false, modeReader, Components(parentPath), modeWriter)
	if err != nil {
		unwind(touched)
		return wrapPath(ErrNotFound, parentPath)
	}

	parent.mu.Lock()
	child, exists := parent.children.get(name)
	parent.mu.Unlock()
	if !exists {
		unwind(touched)
		parent.unlockWriter()
		return wrapPath(ErrNotFound, path)
	}

	child.lockWriter()

	child.mu.Lock()
	empty := child.children.size() == 0
	child.mu.Unlock()

	if !empty {
		child.unlockWriter()
		unwind(touched)
		parent.unlockWriter()
		return wrapPath(ErrNotEmpty, path)
	}

	parent.mu.Lock()
	parent.children.remove(name)
	parent.mu.Unlock()
	child.unlockWriter()

	unwind(touched)
	parent.unlockWriter()

	t.logger.Info("remove", zap.String("path", path))
	return nil
}

// Move relocates the directory at source to target, which names its
// new parent and new name in one path. Moving a directory into its
// own subtree is rejected; moving a directory onto itself is a no-op
// that reports success.
func (t *Tree) Move(source, target string) error {
	if !IsValidPath(source, t.maxName, t.maxPath) {
		return wrapPath(ErrInvalidArgument, source)
	}
	if !IsValidPath(target, t.maxName, t.maxPath) {
		return wrapPath(ErrInvalidArgument, target)
	}
	if source == "/" {
		return wrapPath(ErrBusy, source)
	}
	if target == "/" {
		return wrapPath(ErrExists, target)
	}
	if source == target {
		// Moving a directory onto itself is a no-op success, checked
		// before the descendant check below since equality would
		// otherwise be flagged as ancestry too.
		return nil
	}
	if IsAncestor(source, target) {
		return wrapPath(ErrInvalidArgument, target)
	}

	sourceParentPath, sourceName, _ := SplitParent(source)
	targetParentPath, targetName, _ := SplitParent(target)
	sameParent := sourceParentPath == targetParentPath

	lca := LCA(sourceParentPath, targetParentPath)

	l, lTouched, err := descend(t.root, false, modeReader, Components(lca), modeWriter)
	if err != nil {
		unwind(lTouched)
		return wrapPath(ErrNotFound, lca)
	}

	sp, spTouched, err := descend(l, true, modeWriter, relativeComponents(lca, sourceParentPath), modeWriter)
	if err != nil {
		unwind(spTouched)
		unwind(lTouched)
		l.unlockWriter()
		return wrapPath(ErrNotFound, sourceParentPath)
	}

	var tp *node
	var tpTouched []*node
	if sameParent {
		tp = sp
	} else {
		tp, tpTouched, err = descend(l, true, modeWriter, relativeComponents(lca, targetParentPath), modeWriter)
		if err != nil {
			unwind(tpTouched)
			releaseMove(l, sp, nil, lTouched, spTouched, nil, false)
			return wrapPath(ErrNotFound, targetParentPath)
		}
	}

	sp.mu.Lock()
	sourceNode, exists := sp.children.get(sourceName)
	sp.mu.Unlock()
	if !exists {
		releaseMove(l, sp, tp, lTouched, spTouched, tpTouched, sameParent)
		return wrapPath(ErrNotFound, source)
	}

	tp.mu.Lock()
	_, targetExists := tp.children.get(targetName)
	tp.mu.Unlock()
	if targetExists {
		releaseMove(l, sp, tp, lTouched, spTouched, tpTouched, sameParent)
		switch {
		case source == target:
			return nil
		case IsAncestor(source, target):
			return wrapPath(ErrInvalidArgument, target)
		default:
			return wrapPath(ErrExists, target)
		}
	}

	sourceNode.waitQuiescent()

	sp.mu.Lock()
	sp.children.remove(sourceName)
	sp.mu.Unlock()

	sourceNode.mu.Lock()
	sourceNode.parent = tp
	sourceNode.name = targetName
	sourceNode.mu.Unlock()

	tp.mu.Lock()
	tp.children.insert(targetName, sourceNode)
	tp.mu.Unlock()

	releaseMove(l, sp, tp, lTouched, spTouched, tpTouched, sameParent)

	t.logger.Info("move", zap.String("source", source), zap.String("target", target))
	return nil
}

// releaseMove unwinds and unlocks move's held nodes: target parent
// first (unless it coincides with the source parent or the LCA), then
// source parent (unless it is the LCA), then the LCA itself.
func releaseMove(l, sp, tp *node, lTouched, spTouched, tpTouched []*node, sameParent bool) {
	if tp != nil && !sameParent && tp != l {
		unwind(tpTouched)
		tp.unlockWriter()
	}
	if sp != nil && sp != l {
		unwind(spTouched)
		sp.unlockWriter()
	}
	unwind(lTouched)
	l.unlockWriter()
}
