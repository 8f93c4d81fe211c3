package main

import (
	"github.com/lotto-stats/backend/cmd/app"
)

func main() {
	app.Run()
}
