// cmd/ccat/main.go
package main

import (
	"ccat/internal/app"
	"ccat/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
