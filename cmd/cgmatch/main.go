// cmd/cgmatch/main.go
package main

import (
	"cgmatch/internal/app"
	"cgmatch/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
