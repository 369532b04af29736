// Package manifest reads, patches and validates the project's package.json.
// Documents keep their original key order so a patched manifest diffs
// cleanly against the one npm generated.
package manifest
