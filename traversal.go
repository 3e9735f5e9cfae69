package dirtree

// descend performs hand-over-hand traversal from start down through
// components, locking each interior component as a reader and the
// final one in mode, releasing every predecessor's lock as soon as its
// child's lock is secured.
//
// If pinStart is false, start is locked first (as a reader if
// components remain, or directly in mode otherwise) and released
// hand-over-hand like any other interior node. If pinStart is true,
// start is assumed already locked in pinMode by the caller and is
// never unlocked here; this is what lets Move hold its
// lowest-common-ancestor writer lock across two further descents.
//
// The returned target is left locked in mode; touched holds every
// newly-touched node (excluding a pinned start), to be released via
// unwind. On error, every lock this call itself acquired is already
// released; only unwind of the partial touched slice remains.
func descend(start *node, pinStart bool, pinMode lockMode, components []string, mode lockMode) (target *node, touched []*node, err error) {
	cur := start
	curMode := pinMode
	curPinned := pinStart

	if !pinStart {
		if len(components) == 0 {
			curMode = mode
		} else {
			curMode = modeReader
		}
		lockNode(cur, curMode)
		cur.enterSubtree()
		touched = append(touched, cur)
	}

	for i, name := range components {
		cur.mu.Lock()
		child, ok := cur.children.get(name)
		cur.mu.Unlock()
		if !ok {
			if !curPinned {
				unlockNode(cur, curMode)
			}
			return nil, touched, ErrNotFound
		}

		last := i == len(components)-1
		childMode := modeReader
		if last {
			childMode = mode
		}
		lockNode(child, childMode)
		child.enterSubtree()
		touched = append(touched, child)

		if !curPinned {
			unlockNode(cur, curMode)
		}

		cur, curMode, curPinned = child, childMode, false
	}

	return cur, touched, nil
}

// unwind releases the subtree references descend accumulated, in
// reverse acquisition order. It never touches any node's reader/
// writer lock; those are released separately by the caller.
func unwind(touched []*node) {
	for i := len(touched) - 1; i >= 0; i-- {
		touched[i].leaveSubtree()
	}
}
