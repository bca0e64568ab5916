package logger_test

import (
	"os"

	"github.com/kbukum/utilkit/logger"
)

func ExampleNewPrefixed() {
	p := logger.NewPrefixed(logger.WithOutput(os.Stdout))
	p.Log("hi")

	app := logger.NewPrefixed(logger.WithPrefix("[APP]"), logger.WithErrorOutput(os.Stdout))
	app.Error("bad")
	// Output:
	// [LOG] hi
	// [APP] [ERROR] bad
}
