package main

import "estatecrm/internal/app"

func main() {
	app.Run()
}
