package main

import (
	"os"

	"github.com/danmuck/telestamp/internal/logging"
	"github.com/spf13/afero"
)

func main() {
	logging.ConfigureRuntime()
	a := &app{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.Logger("stampctl"),
	}
	os.Exit(a.run(os.Args[1:]))
}
