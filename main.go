/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/thinkwing/cmd"
	"github.com/josephgoksu/thinkwing/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
