// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options passed to [Run]
// that control its behavior.
type Options struct {

	// AppName is the internal name of the app,
	// used as the command name.
	AppName string

	// AppAbout is the description of the app.
	AppAbout string

	// Version is the version string of the app. If it is
	// set, the command accepts a --version flag.
	Version string

	// Fatal is whether to, if there is an error in [Run],
	// print it and fatally exit the program through [os.Exit]
	// with an exit code of 1.
	Fatal bool

	// DefaultFiles are the default configuration file paths,
	// used when no --config flag is given. Missing files are skipped.
	DefaultFiles []string

	// IncludePaths is a list of file paths to try for finding config files
	// specified in the Includes field or via the --config flag.
	// The default is the current directory.
	IncludePaths []string
}

// DefaultOptions returns a new [Options] value
// with standard default values, based on the given
// app name and app about.
func DefaultOptions(appName, appAbout string) *Options {
	return &Options{
		AppName:      appName,
		AppAbout:     appAbout,
		Fatal:        true,
		DefaultFiles: []string{appName + ".toml"},
		IncludePaths: []string{"."},
	}
}
