package shell

import "runtime"

func isPOSIX() bool {
	return runtime.GOOS != "windows"
}
