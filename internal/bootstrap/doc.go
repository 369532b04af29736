// Package bootstrap implements the three one-shot project commands: the
// post-install hook that patches package.json, setup which installs the
// Python dependencies, and start which seeds the data files and runs the app.
// Each operation works on an explicit Env; none of them reads the process
// working directory.
package bootstrap
