package main

import (
	"log"
	"net/http"

	"wibble/config"
	"wibble/network"
	"wibble/session"
)

func main() {
	tun := config.Load()
	manager := session.NewManager(tun)
	server := network.NewServer(manager)

	mux := http.NewServeMux()
	server.Routes(mux)

	addr := config.Addr()
	log.Printf("listening on %s (ws endpoint: /ws)", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
