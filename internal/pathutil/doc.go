// Package pathutil tracks the position of the converter inside an element tree.
//
// A [PathBuilder] is pushed on entering an element and popped on leaving it;
// the slash-separated string is built only when an issue or error needs it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//	path.Push("Edmx")
//	path.PushNamed("Schema", "tea_busi")
//	path.String() // "Edmx/Schema[tea_busi]"
package pathutil
