// Package project describes the on-disk layout the app expects (folders, seed
// CSV files, package.json) and creates the missing parts of it. Existing
// folders and files are never modified.
package project
