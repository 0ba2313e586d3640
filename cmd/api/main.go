package main

import (
	"payments_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.Run()
}
