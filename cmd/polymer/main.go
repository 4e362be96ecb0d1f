// cmd/polymer/main.go
package main

import (
	"polymer/internal/app"
	"polymer/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
