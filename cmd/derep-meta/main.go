// cmd/derep-meta/main.go
package main

import (
	"derep/internal/appshell"
	"derep/internal/cacheapp"
)

func main() {
	appshell.Main(cacheapp.RunContext)
}
