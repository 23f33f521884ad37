/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/sitelog/cmd"
	"github.com/josephgoksu/sitelog/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
