package main

import (
	"go.uber.org/fx"

	"github.com/zikky0001-droid/YT-DL/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
