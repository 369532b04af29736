// Package doctor runs read-only health checks on a project: folder scaffold,
// seed data files, package.json, and the Python tooling the app needs.
package doctor
