package main

import (
	"log"
	"os"

	"lucky_wheel/internal/app"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Args[2:], os.Stdin, os.Stdout); err != nil {
			log.Fatalf("hash-password: %v", err)
		}
		return
	}

	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
