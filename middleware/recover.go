package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// Recover converts a handler panic into a uniform 500 JSON response
// instead of letting it tear down the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Panic serving %s %s: %v", r.Method, r.URL, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Something went wrong!"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
