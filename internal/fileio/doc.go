// Package fileio loads and saves buffer contents.
//
// The editor never touches the filesystem directly; it goes through a
// Storage. OS is backed by the local filesystem and Memory keeps files in a
// map, which tests and scratch sessions use.
//
// Failures are reported as *OperationError values carrying the operation and
// path, so the editor can surface them on a pane's status line:
//
//	if err := store.Save(path, before, after); err != nil {
//		var fe *fileio.OperationError
//		if errors.As(err, &fe) { ... }
//	}
package fileio
