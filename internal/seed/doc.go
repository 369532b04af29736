// Package seed holds the column schema of the app's CSV tables and the default
// content written into them the first time the app is launched.
package seed
