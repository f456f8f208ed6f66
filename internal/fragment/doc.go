// Package fragment manages unreleased changelog fragments for changelogkyper.
//
// This package implements:
//   - ChangeCategory, the closed set of Keep a Changelog categories
//   - Fragment records and the slug used as their storage key
//   - Store implementations over a directory (DirStore) and in memory (MemStore)
//   - Collect, which groups pending fragments by category for a release
//
// Each pending change lives in its own YAML file inside .changelogkyper/
// until a release consumes it.
package fragment
