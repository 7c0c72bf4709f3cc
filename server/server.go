package server

import (
	"log"
	"net/http"
)

// Serve wires the routes and blocks serving the dashboard.
func Serve(port string) {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatal("Failed to set up logging:", err)
	}
	defer logFile.Close()

	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/charts", chartsHandler)

	log.Printf("Server starting on http://localhost:%s", port)
	log.Printf("Visit http://localhost:%s to see the dashboard", port)

	if err := http.ListenAndServe(":"+port, loggingMiddleware(mux)); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
