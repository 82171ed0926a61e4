// cmd/collatz/main.go
package main

import (
	"collatz/internal/app"
	"collatz/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
