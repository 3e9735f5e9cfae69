/*
Package dirtree implements an in-memory hierarchical directory tree
with fine-grained, per-node concurrency.

Node path

Directories are addressed by paths of lowercase ASCII names separated
by "/", always starting and ending with "/". The string "/" addresses
the root. A path such as "/a/b/c/" addresses the directory "c", child
of "b", child of "a", child of the root.

Read and write

Every node carries its own reader/writer lock. List takes a reader
lock on one node; Create, Remove, and the two ends of Move take a
writer lock on the node(s) whose children map changes. Traversal from
the root locks each intermediate directory as a reader just long
enough to look up the next path component and lock it, then releases
it; only the
final directory stays locked for the operation's duration.

Moving between subtrees

Move touches two parents at once. It takes a writer lock on the lowest
common ancestor of the source's and target's parent directories first,
then waits for
the subtree being moved to go quiescent before rebinding it under its
new parent.

Fairness

The reader/writer lock on each node is writer-preferring: once a
writer is waiting, newly arriving readers queue up behind it instead of
cutting in line.
*/
package dirtree
