// Package watchable provides an observable, recursively nested container.
//
// A Container wraps an ordered and keyed store. Every structured value supplied at
// construction or through Insert becomes a child Container whose parent is its owner,
// so the whole tree is observable: a change to any node fires that node notifier and
// then the notifier of every ancestor up to the root, synchronously and once per change.
//
//	root, _ := watchable.New(map[string]interface{}{"a": 1, "b": map[string]interface{}{"c": 2}})
//	unsubscribe, _ := root.Subscribe(func() { fmt.Println("changed") })
//	defer unsubscribe()
//	b, _ := root.Child("b")
//	_ = b.Set("c", 3) // fires b, then root
//
// Direct writes with Set fire only when the store actually changed; the structural
// operations (Insert, Remove, Clear, Move, Sort, Concat) always fire. Set stores
// structured values as supplied, without wrapping them into child containers.
//
// Nested values can also be addressed with dotted paths, e.g. root.Value("b.c") or
// root.SetValue("items[].name", "x", watchable.WithPathIndex(2)).
//
// Containers are not safe for concurrent use.
package watchable
