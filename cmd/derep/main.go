// cmd/derep/main.go
package main

import (
	"derep/internal/app"
	"derep/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
