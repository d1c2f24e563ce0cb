// Package core turns server node descriptors into an owned widget tree.
//
// # Core Types
//
// A [node.NodeDescriptor] is the server's description of one element: a tag,
// attributes and children. The [Registry] maps each tag to an [Entry] whose
// [Factory] constructs a [Widget]. The [Resolver] walks a descriptor tree
// through the registry and produces a tree of [Node] values, each owning
// exactly one Widget and its ordered children.
//
// # Resolution Order
//
// Resolution is synchronous and document ordered. For each descriptor the
// resolver looks up the entry, derives the child [Scope] (so anything a parent
// provides is in place before its children are built), resolves the children
// depth-first, and finally calls the factory with the classified children:
//
//	reg := core.NewRegistry()
//	reg.MustRegister(core.Entry{Tag: "column", Factory: newColumn})
//	root, err := core.NewResolver(reg).Resolve(desc, sink, scope)
//
// # Roles
//
// An entry may declare [Role]s. Children whose tag or template attribute
// matches a role fill that named slot instead of being passed as generic
// content. Roles are matched first-match in declaration order; when a child
// matches an exclusive role that is already filled, it becomes generic
// content, so the first child in document order wins the slot.
//
// # Failures
//
// An unknown tag or a failing factory never aborts its siblings. The failure
// is returned as a typed error (see [errors.UnknownTagError] and
// [errors.BuildError]) and the resolver's [FailurePolicy] decides whether a
// [Placeholder] takes the failed node's place.
package core
