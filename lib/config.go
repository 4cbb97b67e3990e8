package lib

import (
	"os"
	"path/filepath"
)

/* This file implements logic for 'user controlled' global configuration of the verifier's ambient services (currently: log output) */

// DefaultDataDirPath() is $USERHOME/.ics23verify - used as the default destination for rotated log files
func DefaultDataDirPath() string {
	// get the user home
	home, err := os.UserHomeDir()
	// if unable to get the user home
	if err != nil {
		// fatal error
		panic(err)
	}
	// exit with full default data directory path
	return filepath.Join(home, ".ics23verify")
}
